package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkapoor/lingua/internal/pattern"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the grammar topic catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := topics.NewCatalog()

		// Learned markers come from the event log; without a usable
		// database the list still prints.
		learned := make(map[string]bool)
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if s, err := store.Open(dbPath); err == nil {
				defer s.Close()
				if ids, err := s.EventRepo().LearnedTopics(context.Background()); err == nil {
					for _, id := range ids {
						learned[id] = true
					}
				}
			}
		}

		fmt.Printf("%-24s  %-36s  %-20s  %s\n", "ID", "Title", "Category", "Learned")
		fmt.Println(strings.Repeat("─", 92))

		for _, topic := range catalog.All() {
			cat := pattern.Classify(topic.Title, topic.Explanation)
			mark := ""
			if learned[topic.ID] {
				mark = "✓"
			}
			fmt.Printf("%-24s  %-36s  %-20s  %s\n",
				topic.ID, topic.Title, cat.DisplayName(), mark)
		}
		return nil
	},
}
