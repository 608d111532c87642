package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ameya/eduplan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduplan",
	Short: "Multi-agent lesson plan optimizer",
	Long:  "EduPlan — an agentic tutoring pipeline that drafts, evaluates, and iteratively optimizes personalized lesson plans.",
}

func Execute() error {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUPLAN_DB env var)")
	rootCmd.PersistentFlags().Bool("no-log", false, "Disable session and LLM event logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then EDUPLAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
