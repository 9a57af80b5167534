package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"compass/internal/assess"
	"compass/internal/logging"
)

var scoreFlags struct {
	input   string
	rater   string
	catalog string
	format  string
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one assessment attempt",
	Long: `Score reads a complete attempt (YAML or JSON) and prints the derived
report: dimension, territory and index scores, archetype matches, quality
flags, development priorities and, with rater data, the gap analysis.`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreFlags.input, "input", "", "Attempt file with responses (required)")
	f.StringVar(&scoreFlags.rater, "rater", "", "Rater response file for mirror items (optional)")
	f.StringVar(&scoreFlags.catalog, "catalog", "", "Catalogue file (default: embedded catalogue)")
	f.StringVar(&scoreFlags.format, "format", "text", "Output format (text, json, yaml)")
	_ = scoreCmd.MarkFlagRequired("input")
}

func runScore(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(scoreFlags.catalog)
	if err != nil {
		return err
	}
	engine, err := assess.New(cat)
	if err != nil {
		return err
	}

	input, err := loadAttempt(scoreFlags.input)
	if err != nil {
		return err
	}
	if scoreFlags.rater != "" {
		if err := loadRater(scoreFlags.rater, &input); err != nil {
			return err
		}
	}

	result, err := engine.Score(input)
	if err != nil {
		return fmt.Errorf("score attempt: %w", err)
	}

	logging.New("cli").Info("attempt scored",
		"input", scoreFlags.input,
		"responses", len(input.Responses),
		"flags", len(result.Flags))

	out, err := encodeResult(result, scoreFlags.format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
