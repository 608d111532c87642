package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ameya/eduplan/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive tutoring session in the console",
	RunE:  runSession,
}

func init() {
	runCmd.Flags().String("level", "", "Student level: Beginner, Intermediate, or Advanced")
	runCmd.Flags().String("topic", "", "Lesson topic")
	runCmd.Flags().Bool("skip-quiz", false, "Skip the post-session quiz")
	addPipelineFlags(runCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	svc, _, cleanup, err := buildService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	subj := svc.Subject()
	level, _ := cmd.Flags().GetString("level")
	if level == "" {
		level = prompt(in, out, fmt.Sprintf("Student level %v: ", subj.Levels))
	}
	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		topic = prompt(in, out, "Lesson topic: ")
	}

	fmt.Fprintf(out, "\nBuilding skill profile for a %s student...\n", level)
	sess, err := svc.StartSession(ctx, level, topic)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Skill profile: %s\n", sess.Profile)

	fmt.Fprintf(out, "\nOptimizing lesson plan for %q...\n", topic)
	outcome, err := svc.RunPipeline(ctx, sess)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	for _, it := range outcome.Trace {
		mark := ""
		if it.Degraded {
			mark = " (verdict unreadable, scored 0)"
		}
		fmt.Fprintf(out, "  iteration %d: score %.1f%s\n", it.Index, it.Score, mark)
	}
	fmt.Fprintf(out, "\n=== LESSON PLAN (score %.1f) ===\n\n%s\n", outcome.Score, outcome.Plan)

	accuracy := 0.0
	if skip, _ := cmd.Flags().GetBool("skip-quiz"); !skip && len(outcome.Quiz) > 0 {
		answers := make([]string, len(outcome.Quiz))
		fmt.Fprintf(out, "\n=== CONCEPT CHECK (%d questions) ===\n", len(outcome.Quiz))
		for i, q := range outcome.Quiz {
			fmt.Fprintf(out, "\nQ%d: %s\n", i+1, q.Question)
			answers[i] = prompt(in, out, "Your answer: ")
		}

		result, err := svc.GradeQuiz(ctx, outcome.Quiz, answers)
		if err != nil {
			return fmt.Errorf("grade quiz: %w", err)
		}
		for i, ok := range result.Correct {
			verdict := "incorrect"
			if ok {
				verdict = "correct"
			}
			fmt.Fprintf(out, "Q%d: %s (expected: %s)\n", i+1, verdict, outcome.Quiz[i].Answer)
		}
		accuracy = result.Accuracy
		fmt.Fprintf(out, "Quiz accuracy: %.0f%%\n", accuracy*100)
	}

	updated, status, err := svc.FinalizeSession(ctx, sess, accuracy)
	if err != nil {
		return fmt.Errorf("finalize session: %w", err)
	}

	fmt.Fprintf(out, "\nSession status: %s\n", status)
	fmt.Fprintf(out, "Updated skill profile: %s\n", updated)
	if status != pipeline.StatusCompleted {
		fmt.Fprintln(out, "Keep practicing and run another session on this topic.")
	}
	return nil
}

// prompt prints a label and reads one trimmed line.
func prompt(in *bufio.Scanner, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
