package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/observability"
)

var evaluateCommand = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a CV against a target job title",
	Long: `Runs a complete evaluation: three parallel structured extractions
(experience, skills, education), deterministic scoring, and a narrative
summary conditioned on the computed fit score. The full run is recorded
under an audit session.`,
	RunE: runEvaluate,
}

var (
	evaluateFlags    sharedFlags
	evaluateCVPath   string
	evaluateJobTitle string
	evaluateJSONOut  bool
)

func init() {
	evaluateFlags.register(evaluateCommand)
	evaluateCommand.Flags().StringVar(&evaluateCVPath, "cv", "", "Path to the CV text file (required)")
	evaluateCommand.Flags().StringVar(&evaluateJobTitle, "job-title", "", "Target job title (required)")
	evaluateCommand.Flags().BoolVar(&evaluateJSONOut, "json", false, "Print the full result as JSON instead of the formatted breakdown")
	_ = evaluateCommand.MarkFlagRequired("cv")
	_ = evaluateCommand.MarkFlagRequired("job-title")

	rootCmd.AddCommand(evaluateCommand)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := evaluateFlags.loadConfig(cmd)
	if err != nil {
		return err
	}

	cvText, err := os.ReadFile(evaluateCVPath)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	recorder, cleanup, err := newRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	analyzer, err := newAnalyzer(ctx, cfg, recorder, log)
	if err != nil {
		return err
	}

	result, err := analyzer.Evaluate(ctx, string(cvText), evaluateJobTitle)
	if err != nil {
		return err
	}

	if evaluateJSONOut {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBreakdown(result.Breakdown)
	printer.PrintSummary(result.Evaluation.Summary)
	if cfg.Verbose {
		printer.PrintExperiences(result.Evaluation.Experiences)
	}
	fmt.Printf("Session: %s\n", result.SessionID)

	return nil
}
