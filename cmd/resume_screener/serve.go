package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/analyze"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extract"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/server"
	"github.com/jonathan/resume-screener/internal/store"
)

var (
	servePort string
	serveSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for uploading resumes, screening candidates and dashboard analytics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "Seed sample job positions on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if serveSeed {
		cfg.SeedSampleData = true
	}

	st := store.New()
	if cfg.SeedSampleData {
		seedSampleData(st)
	}

	var vocab analyze.Vocabulary
	if cfg.SkillVocabFile != "" {
		vocab, err = analyze.LoadVocabularyFile(cfg.SkillVocabFile)
		if err != nil {
			return err
		}
	}

	pipeline := screening.NewPipeline(
		extract.NewExtractor(cfg.MaxUploadBytes, cfg.TesseractCmd),
		analyze.NewAnalyzer(vocab),
		st,
	)

	srv, err := server.New(cfg, st, pipeline)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// seedSampleData creates a couple of job positions so a fresh instance
// has something to screen against.
func seedSampleData(st *store.Store) {
	st.AddJobPosition(store.JobPositionInput{
		Title:        "Software Engineer",
		Department:   "Tech",
		Description:  "Backend development role",
		Requirements: []string{"Python", "Flask"},
		IsActive:     true,
	})
	st.AddJobPosition(store.JobPositionInput{
		Title:        "Data Scientist",
		Department:   "Data",
		Description:  "Analytics role",
		Requirements: []string{"ML", "Python"},
		IsActive:     true,
	})
}
