package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/pipeline"
	"github.com/ameya/eduplan/internal/questionbank"
	"github.com/ameya/eduplan/internal/store"
	"github.com/ameya/eduplan/internal/subject"
)

// addPipelineFlags registers the loop-tuning flags shared by run and
// serve.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("stop-mode", string(pipeline.StopFixed), `Loop stop mode: "iterations" or "threshold"`)
	cmd.Flags().Int("max-iterations", 0, "Maximum optimization iterations (0 = default)")
	cmd.Flags().Float64("score-threshold", 0, "Average score that counts as good enough (0 = default)")
	cmd.Flags().String("bank", "", "Path to a question bank JSON file (default: built-in OS questions)")
}

// pipelineConfigFromFlags builds the loop configuration from flags,
// starting from defaults.
func pipelineConfigFromFlags(cmd *cobra.Command) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()

	if mode, _ := cmd.Flags().GetString("stop-mode"); mode != "" {
		cfg.StopMode = pipeline.StopMode(mode)
	}
	if n, _ := cmd.Flags().GetInt("max-iterations"); n > 0 {
		cfg.MaxIterations = n
	}
	if th, _ := cmd.Flags().GetFloat64("score-threshold"); th > 0 {
		cfg.ScoreThreshold = th
	}

	return cfg, cfg.Validate()
}

// loadBank loads the question bank from --bank, falling back to the
// built-in set.
func loadBank(cmd *cobra.Command) (*questionbank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return questionbank.New(defaultQuestions), nil
	}
	return questionbank.Load(path)
}

// buildService wires the store, provider, and session service from
// flags and environment. The returned cleanup closes the store; it is
// a no-op when logging is disabled.
func buildService(cmd *cobra.Command) (*pipeline.Service, store.EventRepo, func(), error) {
	cleanup := func() {}

	cfg, err := pipelineConfigFromFlags(cmd)
	if err != nil {
		return nil, nil, cleanup, err
	}

	bank, err := loadBank(cmd)
	if err != nil {
		return nil, nil, cleanup, err
	}

	var events store.EventRepo
	if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return nil, nil, cleanup, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, nil, cleanup, fmt.Errorf("open store: %w", err)
		}
		cleanup = func() { st.Close() }

		events, err = st.EventRepo()
		if err != nil {
			cleanup()
			return nil, nil, func() {}, fmt.Errorf("event repo: %w", err)
		}
	}

	llmCfg := llm.ConfigFromEnv()
	provider, err := llm.NewProvider(llmCfg, events)
	if err != nil {
		cleanup()
		return nil, nil, func() {}, err
	}

	svc, err := pipeline.NewService(provider, subject.OperatingSystems(), bank, cfg, events)
	if err != nil {
		cleanup()
		return nil, nil, func() {}, err
	}
	return svc, events, cleanup, nil
}

// openEventRepo opens just the event store, for read-only commands.
func openEventRepo(cmd *cobra.Command) (store.EventRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil, fmt.Errorf("no session database at %s", dbPath)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	repo, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return repo, func() { st.Close() }, nil
}
