// Package store provides the in-memory repository for job positions,
// candidates, analyses, processing items and activity log entries. All
// state lives in process memory; entities are handed out as copies and
// can only be mutated through Update calls.
package store

import (
	"log"
	"sort"
	"sync"
	"time"
)

// Store owns all entity instances. Ids are positive, strictly increasing
// per entity type and never reused. Timestamps are assigned here, not by
// callers. A single store-wide lock serializes access since counters and
// maps are mutated together.
type Store struct {
	mu sync.RWMutex

	jobPositions    map[int]JobPosition
	candidates      map[int]Candidate
	analyses        map[int]ResumeAnalysis
	processingItems map[int]ProcessingItem
	activities      map[int]Activity

	nextJobID        int
	nextCandidateID  int
	nextAnalysisID   int
	nextProcessingID int
	nextActivityID   int

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	s := &Store{now: time.Now}
	s.reset()
	return s
}

// reset reinitializes collections and counters. Caller must hold mu.
func (s *Store) reset() {
	s.jobPositions = make(map[int]JobPosition)
	s.candidates = make(map[int]Candidate)
	s.analyses = make(map[int]ResumeAnalysis)
	s.processingItems = make(map[int]ProcessingItem)
	s.activities = make(map[int]Activity)
	s.nextJobID = 1
	s.nextCandidateID = 1
	s.nextAnalysisID = 1
	s.nextProcessingID = 1
	s.nextActivityID = 1
}

// Clear resets all collections and counters to their initial empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	log.Printf("store: all data cleared")
}

// AddJobPosition inserts a new job position and returns its id.
func (s *Store) AddJobPosition(in JobPositionInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := JobPosition{
		ID:           s.nextJobID,
		Title:        in.Title,
		Department:   in.Department,
		Description:  in.Description,
		Requirements: cloneStrings(in.Requirements),
		IsActive:     in.IsActive,
		CreatedAt:    s.now(),
	}
	s.jobPositions[job.ID] = job
	s.nextJobID++
	log.Printf("store: added job position %d (%s)", job.ID, job.Title)
	return job.ID
}

// JobPosition returns a copy of the job position, or false if absent.
func (s *Store) JobPosition(id int) (JobPosition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobPositions[id]
	if !ok {
		return JobPosition{}, false
	}
	return copyJobPosition(job), true
}

// JobPositions returns all job positions in id order.
func (s *Store) JobPositions() []JobPosition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]JobPosition, 0, len(s.jobPositions))
	for _, job := range s.jobPositions {
		out = append(out, copyJobPosition(job))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateJobPosition applies the patch to an existing job position.
// Returns false when the id does not exist.
func (s *Store) UpdateJobPosition(id int, patch JobPositionPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobPositions[id]
	if !ok {
		return false
	}
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Department != nil {
		job.Department = *patch.Department
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Requirements != nil {
		job.Requirements = cloneStrings(*patch.Requirements)
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}
	s.jobPositions[id] = job
	log.Printf("store: updated job position %d", id)
	return true
}

// AddCandidate inserts a new candidate and returns its id.
func (s *Store) AddCandidate(in CandidateInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Candidate{
		ID:         s.nextCandidateID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		ResumeText: in.ResumeText,
		Filename:   in.Filename,
		FileSize:   in.FileSize,
		UploadedAt: s.now(),
	}
	s.candidates[c.ID] = c
	s.nextCandidateID++
	log.Printf("store: added candidate %d (%s)", c.ID, c.Filename)
	return c.ID
}

// Candidate returns a copy of the candidate, or false if absent.
func (s *Store) Candidate(id int) (Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.candidates[id]
	return c, ok
}

// Candidates returns all candidates in id order.
func (s *Store) Candidates() []Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateCandidate applies the patch to an existing candidate.
func (s *Store) UpdateCandidate(id int, patch CandidatePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return false
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	s.candidates[id] = c
	log.Printf("store: updated candidate %d", id)
	return true
}

// AddAnalysis records a completed analysis and returns its id.
func (s *Store) AddAnalysis(in AnalysisInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := ResumeAnalysis{
		ID:              s.nextAnalysisID,
		CandidateID:     in.CandidateID,
		JobPositionID:   in.JobPositionID,
		OverallScore:    clampScore(in.OverallScore),
		SkillsScore:     clampScore(in.SkillsScore),
		ExperienceScore: clampScore(in.ExperienceScore),
		EducationScore:  clampScore(in.EducationScore),
		ExtractedSkills: cloneStrings(in.ExtractedSkills),
		KeyPoints:       cloneStrings(in.KeyPoints),
		Recommendations: in.Recommendations,
		RawAnalysis:     cloneMap(in.RawAnalysis),
		Status:          in.Status,
		CreatedAt:       s.now(),
	}
	if a.Status == "" {
		a.Status = StatusCompleted
	}
	s.analyses[a.ID] = a
	s.nextAnalysisID++
	log.Printf("store: added analysis %d for candidate %d", a.ID, a.CandidateID)
	return a.ID
}

// Analysis returns a copy of the analysis, or false if absent.
func (s *Store) Analysis(id int) (ResumeAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[id]
	if !ok {
		return ResumeAnalysis{}, false
	}
	return copyAnalysis(a), true
}

// Analyses returns all analyses in id order.
func (s *Store) Analyses() []ResumeAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ResumeAnalysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		out = append(out, copyAnalysis(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CandidateAnalysis returns the analysis for a candidate, or false when
// none exists. When several exist the latest by creation time wins, with
// the higher id breaking ties.
func (s *Store) CandidateAnalysis(candidateID int) (ResumeAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.latestAnalysisFor(candidateID)
	if !ok {
		return ResumeAnalysis{}, false
	}
	return copyAnalysis(a), true
}

// latestAnalysisFor finds the newest analysis for a candidate.
// Caller must hold mu.
func (s *Store) latestAnalysisFor(candidateID int) (ResumeAnalysis, bool) {
	var best ResumeAnalysis
	found := false
	for _, a := range s.analyses {
		if a.CandidateID != candidateID {
			continue
		}
		if !found || a.CreatedAt.After(best.CreatedAt) ||
			(a.CreatedAt.Equal(best.CreatedAt) && a.ID > best.ID) {
			best = a
			found = true
		}
	}
	return best, found
}

// UpdateAnalysis applies the patch to an existing analysis.
func (s *Store) UpdateAnalysis(id int, patch AnalysisPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.analyses[id]
	if !ok {
		return false
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Recommendations != nil {
		a.Recommendations = *patch.Recommendations
	}
	s.analyses[id] = a
	log.Printf("store: updated analysis %d", id)
	return true
}

// CandidatesWithAnalysis left-joins every candidate with its latest
// analysis. Candidates without one get zero scores and an empty skill list.
func (s *Store) CandidatesWithAnalysis() []CandidateView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CandidateView, 0, len(s.candidates))
	for _, c := range s.candidates {
		view := CandidateView{Candidate: c, ExtractedSkills: []string{}}
		if a, ok := s.latestAnalysisFor(c.ID); ok {
			copied := copyAnalysis(a)
			view.OverallScore = copied.OverallScore
			view.SkillsScore = copied.SkillsScore
			view.ExperienceScore = copied.ExperienceScore
			view.EducationScore = copied.EducationScore
			if copied.ExtractedSkills != nil {
				view.ExtractedSkills = copied.ExtractedSkills
			}
			view.JobPositionID = copied.JobPositionID
			view.Analysis = &copied
		}
		out = append(out, view)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddProcessingItem enqueues a processing record and returns its id.
func (s *Store) AddProcessingItem(in ProcessingItemInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	item := ProcessingItem{
		ID:           s.nextProcessingID,
		CandidateID:  in.CandidateID,
		Status:       in.Status,
		Progress:     in.Progress,
		ErrorMessage: in.ErrorMessage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if item.Status == "" {
		item.Status = StatusPending
	}
	s.processingItems[item.ID] = item
	s.nextProcessingID++
	return item.ID
}

// ProcessingQueue returns all processing items in id order.
func (s *Store) ProcessingQueue() []ProcessingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ProcessingItem, 0, len(s.processingItems))
	for _, item := range s.processingItems {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateProcessingItem patches the processing item belonging to a
// candidate and bumps its UpdatedAt. Returns false when no item exists
// for that candidate.
func (s *Store) UpdateProcessingItem(candidateID int, patch ProcessingItemPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.processingItems {
		if item.CandidateID != candidateID {
			continue
		}
		if patch.Status != nil {
			item.Status = *patch.Status
		}
		if patch.Progress != nil {
			item.Progress = *patch.Progress
		}
		if patch.ErrorMessage != nil {
			item.ErrorMessage = *patch.ErrorMessage
		}
		item.UpdatedAt = s.now()
		s.processingItems[id] = item
		return true
	}
	return false
}

// AddActivity logs an activity entry and returns its id.
func (s *Store) AddActivity(in ActivityInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	act := Activity{
		ID:            s.nextActivityID,
		Type:          in.Type,
		Description:   in.Description,
		CandidateID:   in.CandidateID,
		JobPositionID: in.JobPositionID,
		CreatedAt:     s.now(),
	}
	s.activities[act.ID] = act
	s.nextActivityID++
	return act.ID
}

// RecentActivities returns up to limit activities, newest first.
func (s *Store) RecentActivities(limit int) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Activity, 0, len(s.activities))
	for _, act := range s.activities {
		out = append(out, act)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Counts reports how many entities of each type are stored.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"job_positions":    len(s.jobPositions),
		"candidates":       len(s.candidates),
		"analyses":         len(s.analyses),
		"processing_items": len(s.processingItems),
		"activities":       len(s.activities),
	}
}

// clampScore forces a score into the [0, 100] range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
