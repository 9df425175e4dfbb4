package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		totalXP, err := repo.TotalXP(ctx)
		if err != nil {
			return fmt.Errorf("total XP: %w", err)
		}
		sessions, err := repo.CompletedSessionCount(ctx)
		if err != nil {
			return fmt.Errorf("session count: %w", err)
		}
		learnedIDs, err := repo.LearnedTopics(ctx)
		if err != nil {
			return fmt.Errorf("learned topics: %w", err)
		}
		learnedSet := make(map[string]bool, len(learnedIDs))
		for _, id := range learnedIDs {
			learnedSet[id] = true
		}

		earned, needed := progress.LevelProgress(totalXP)
		fmt.Printf("Level %d  (%d/%d XP to next)\n", progress.Level(totalXP), earned, needed)
		fmt.Printf("Total XP:           %d\n", totalXP)
		fmt.Printf("Sessions completed: %d\n", sessions)
		fmt.Printf("Topics learned:     %d\n", len(learnedIDs))
		fmt.Println()

		fmt.Printf("%-36s  %8s  %9s  %s\n", "Topic", "Answers", "Accuracy", "Learned")
		fmt.Println(strings.Repeat("─", 68))

		for _, topic := range topics.NewCatalog().All() {
			ts, err := repo.TopicAccuracy(ctx, topic.ID)
			if err != nil {
				continue
			}
			if ts.Answers == 0 && !learnedSet[topic.ID] {
				continue
			}
			mark := ""
			if learnedSet[topic.ID] {
				mark = "✓"
			}
			fmt.Printf("%-36s  %8d  %8.0f%%  %s\n",
				topic.Title, ts.Answers, ts.Accuracy*100, mark)
		}

		return nil
	},
}
