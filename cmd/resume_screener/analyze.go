package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/analyze"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extract"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/store"
)

var (
	analyzeRequirements []string
	analyzeVerbose      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Score one resume file offline",
	Long:  `Extract text from a PDF or DOCX resume and print its analysis as JSON, without starting the server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeRequirements, "require", nil, "Required skill (repeatable)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a formatted summary instead of JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := args[0]
	extractor := extract.NewExtractor(cfg.MaxUploadBytes, cfg.TesseractCmd)
	text, diag, err := extractor.Extract(cmd.Context(), path, filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "extracted %d characters (%s)\n", len(text), diag)

	var job *store.JobPosition
	if len(analyzeRequirements) > 0 {
		job = &store.JobPosition{Title: "ad-hoc", Requirements: analyzeRequirements}
	}

	report, err := analyze.NewAnalyzer(nil).Analyze(text, job)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintReport(report)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
