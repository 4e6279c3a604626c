// Package screening wires an uploaded resume file through extraction,
// analysis and storage.
package screening

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/analyze"
	"github.com/jonathan/resume-screener/internal/extract"
	"github.com/jonathan/resume-screener/internal/store"
)

// batchConcurrency bounds how many resumes a bulk upload processes at once.
const batchConcurrency = 4

// Store is the repository surface the pipeline writes to. Satisfied by
// *store.Store; declared here so a different backend can be substituted
// without touching the processing logic.
type Store interface {
	AddCandidate(store.CandidateInput) int
	UpdateCandidate(int, store.CandidatePatch) bool
	AddAnalysis(store.AnalysisInput) int
	AddProcessingItem(store.ProcessingItemInput) int
	UpdateProcessingItem(int, store.ProcessingItemPatch) bool
	AddActivity(store.ActivityInput) int
	JobPosition(int) (store.JobPosition, bool)
}

// Pipeline orchestrates extract -> analyze -> store for uploaded files.
type Pipeline struct {
	extractor *extract.Extractor
	analyzer  *analyze.Analyzer
	store     Store
}

// NewPipeline creates a pipeline over the given components.
func NewPipeline(extractor *extract.Extractor, analyzer *analyze.Analyzer, st Store) *Pipeline {
	return &Pipeline{extractor: extractor, analyzer: analyzer, store: st}
}

// Result reports the outcome of processing one uploaded file.
type Result struct {
	Success     bool            `json:"success"`
	CandidateID int             `json:"candidate_id,omitempty"`
	Analysis    *analyze.Report `json:"analysis,omitempty"`
	FileSize    int64           `json:"file_size,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// ProcessFile runs one uploaded file through the pipeline. The file at
// path is deleted exactly once, after processing succeeds or fails. The
// returned error reflects the user-facing failure (bad file, no
// extractable text); storage bookkeeping never errors.
func (p *Pipeline) ProcessFile(ctx context.Context, path, originalName string, jobID int) (*Result, error) {
	log.Printf("screening: processing resume %s at %s", originalName, path)

	var fileSize int64
	if info, err := os.Stat(path); err == nil {
		fileSize = info.Size()
	}

	// The uploaded file must not accumulate on disk regardless of outcome.
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("screening: failed to remove uploaded file %s: %v", path, err)
		}
	}()

	text, diag, err := p.extractor.Extract(ctx, path, filepath.Ext(originalName))
	if err != nil {
		return &Result{Success: false, Error: err.Error()}, err
	}
	if strings.TrimSpace(text) == "" {
		err := fmt.Errorf("no usable text in %s (%s): %w", originalName, diag, &analyze.EmptyInputError{})
		log.Printf("screening: %v", err)
		return &Result{Success: false, Error: err.Error()}, err
	}

	candidateID := p.store.AddCandidate(store.CandidateInput{
		Name:       analyze.UnknownName,
		ResumeText: text,
		Filename:   originalName,
		FileSize:   fileSize,
	})
	p.store.AddProcessingItem(store.ProcessingItemInput{
		CandidateID: candidateID,
		Status:      store.StatusPending,
	})
	p.store.AddActivity(store.ActivityInput{
		Type:        store.ActivityResumeUploaded,
		Description: fmt.Sprintf("Resume uploaded: %s", originalName),
		CandidateID: candidateID,
	})

	var job *store.JobPosition
	if jobID > 0 {
		if j, ok := p.store.JobPosition(jobID); ok {
			job = &j
		} else {
			log.Printf("screening: job position %d not found, analyzing without requirements", jobID)
		}
	}

	report, err := p.analyzer.Analyze(text, job)
	if err != nil {
		p.markFailed(candidateID, err)
		return &Result{Success: false, CandidateID: candidateID, Error: err.Error()}, err
	}

	p.store.UpdateCandidate(candidateID, store.CandidatePatch{
		Name:  &report.Contact.Name,
		Email: &report.Contact.Email,
		Phone: &report.Contact.Phone,
	})
	p.store.AddAnalysis(store.AnalysisInput{
		CandidateID:     candidateID,
		JobPositionID:   jobID,
		OverallScore:    report.OverallScore,
		SkillsScore:     report.SkillsScore,
		ExperienceScore: report.ExperienceScore,
		EducationScore:  report.EducationScore,
		ExtractedSkills: report.ExtractedSkills,
		KeyPoints:       report.KeyPoints,
		Recommendations: report.Recommendations,
		RawAnalysis:     report.Raw(),
		Status:          store.StatusCompleted,
	})

	completed := store.StatusCompleted
	progress := 100
	p.store.UpdateProcessingItem(candidateID, store.ProcessingItemPatch{
		Status:   &completed,
		Progress: &progress,
	})
	p.store.AddActivity(store.ActivityInput{
		Type:          store.ActivityAnalysisCompleted,
		Description:   fmt.Sprintf("Analysis completed for %s with score %d/100", report.Contact.Name, report.OverallScore),
		CandidateID:   candidateID,
		JobPositionID: jobID,
	})

	log.Printf("screening: candidate %d processed (overall score %d)", candidateID, report.OverallScore)
	return &Result{
		Success:     true,
		CandidateID: candidateID,
		Analysis:    report,
		FileSize:    fileSize,
	}, nil
}

// markFailed records a failed processing outcome for the candidate.
func (p *Pipeline) markFailed(candidateID int, cause error) {
	failed := store.StatusFailed
	msg := cause.Error()
	p.store.UpdateProcessingItem(candidateID, store.ProcessingItemPatch{
		Status:       &failed,
		ErrorMessage: &msg,
	})
}

// BatchFile names one file of a bulk upload.
type BatchFile struct {
	Path         string
	OriginalName string
}

// ProcessBatch runs several uploads with bounded concurrency. Per-file
// failures land in the matching Result; the batch itself never errors
// except on context cancellation.
func (p *Pipeline) ProcessBatch(ctx context.Context, files []BatchFile, jobID int) []*Result {
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, f := range files {
		g.Go(func() error {
			res, err := p.ProcessFile(gctx, f.Path, f.OriginalName, jobID)
			if err != nil && !isProcessingFailure(err) {
				// Only cancellation aborts the batch.
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("screening: batch aborted: %v", err)
	}

	succeeded := 0
	for i, res := range results {
		if res == nil {
			results[i] = &Result{Success: false, Error: "cancelled"}
			continue
		}
		if res.Success {
			succeeded++
		}
	}
	p.store.AddActivity(store.ActivityInput{
		Type:        store.ActivityBulkUpload,
		Description: fmt.Sprintf("%d resumes uploaded in bulk (%d processed)", len(files), succeeded),
	})
	return results
}

// isProcessingFailure reports whether the error is an expected
// per-resume failure rather than an infrastructure problem.
func isProcessingFailure(err error) bool {
	var ve *extract.ValidationError
	var ee *analyze.EmptyInputError
	return errors.As(err, &ve) || errors.As(err, &ee)
}
