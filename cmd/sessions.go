package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent tutoring sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		repo, cleanup, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := repo.RecentSessions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-24s  %-5s  %-6s  %-5s  %s\n",
			"Timestamp", "Level", "Topic", "Iter", "Score", "Quiz", "Status")
		fmt.Println(strings.Repeat("─", 96))

		for _, r := range records {
			topic := r.Topic
			if len(topic) > 24 {
				topic = topic[:24]
			}
			fmt.Printf("%-19s  %-12s  %-24s  %-5d  %-6.1f  %-5.0f  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.StudentLevel,
				topic,
				r.Iterations,
				r.FinalScore,
				r.QuizAccuracy*100,
				r.Status,
			)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().Int("limit", 10, "Maximum number of sessions to show")
}
