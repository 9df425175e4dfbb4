package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkapoor/lingua/internal/app"
	"github.com/nkapoor/lingua/internal/llm"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp wires the TUI. The LLM provider is optional; without one, the
// app runs on pattern-generated exercises alone.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	opts := app.Options{DBPath: dbPath}

	if cfg, ok := resolveLLMConfig(); ok {
		opts.LLMConfig = &cfg
	} else {
		fmt.Fprintln(os.Stderr, "LLM provider not configured; drafted exercises disabled.")
	}

	return app.Run(opts)
}

// resolveLLMConfig prefers explicit LINGUA_* configuration and falls
// back to probing standard provider key variables.
func resolveLLMConfig() (llm.Config, bool) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, true
	}
	return llm.DiscoverConfig()
}
