package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini",
	// "openrouter", or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional override for OpenAI-compatible APIs
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff applied to transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the baseline configuration: Anthropic with
// the cheap model, three attempts, 30s timeout.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv layers LINGUA_* environment variables over the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "LINGUA_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "LINGUA_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "LINGUA_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "LINGUA_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "LINGUA_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "LINGUA_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "LINGUA_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "LINGUA_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "LINGUA_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "LINGUA_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the conventional unprefixed API key variables
// and picks the first provider that has one. The order favors the
// cheapest providers: Gemini, then OpenAI, Anthropic, OpenRouter.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	keys := map[string]struct {
		key    string
		envVar string
	}{
		"anthropic":  {c.Anthropic.APIKey, "LINGUA_ANTHROPIC_API_KEY"},
		"openai":     {c.OpenAI.APIKey, "LINGUA_OPENAI_API_KEY"},
		"gemini":     {c.Gemini.APIKey, "LINGUA_GEMINI_API_KEY"},
		"openrouter": {c.OpenRouter.APIKey, "LINGUA_OPENROUTER_API_KEY"},
	}

	if c.Provider == "mock" {
		return nil
	}
	entry, ok := keys[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if entry.key == "" {
		return fmt.Errorf("%s is required for the %s provider", entry.envVar, c.Provider)
	}
	return nil
}
