package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"
)

// Snapshot is a full serialized copy of store state. Timestamps marshal as
// RFC 3339 strings via encoding/json.
type Snapshot struct {
	JobPositions    []JobPosition    `json:"job_positions"`
	Candidates      []Candidate      `json:"candidates"`
	Analyses        []ResumeAnalysis `json:"analyses"`
	ProcessingItems []ProcessingItem `json:"processing_items"`
	Activities      []Activity       `json:"activities"`
	ExportedAt      time.Time        `json:"export_timestamp"`
}

// ExportSnapshot serializes the entire store state.
func (s *Store) ExportSnapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		JobPositions:    make([]JobPosition, 0, len(s.jobPositions)),
		Candidates:      make([]Candidate, 0, len(s.candidates)),
		Analyses:        make([]ResumeAnalysis, 0, len(s.analyses)),
		ProcessingItems: make([]ProcessingItem, 0, len(s.processingItems)),
		Activities:      make([]Activity, 0, len(s.activities)),
		ExportedAt:      s.now(),
	}
	for _, j := range s.jobPositions {
		snap.JobPositions = append(snap.JobPositions, copyJobPosition(j))
	}
	for _, c := range s.candidates {
		snap.Candidates = append(snap.Candidates, c)
	}
	for _, a := range s.analyses {
		snap.Analyses = append(snap.Analyses, copyAnalysis(a))
	}
	for _, p := range s.processingItems {
		snap.ProcessingItems = append(snap.ProcessingItems, p)
	}
	for _, a := range s.activities {
		snap.Activities = append(snap.Activities, a)
	}

	// Collections come from map iteration; sort by id so exports are
	// deterministic and preserve insertion order.
	sort.Slice(snap.JobPositions, func(i, j int) bool { return snap.JobPositions[i].ID < snap.JobPositions[j].ID })
	sort.Slice(snap.Candidates, func(i, j int) bool { return snap.Candidates[i].ID < snap.Candidates[j].ID })
	sort.Slice(snap.Analyses, func(i, j int) bool { return snap.Analyses[i].ID < snap.Analyses[j].ID })
	sort.Slice(snap.ProcessingItems, func(i, j int) bool { return snap.ProcessingItems[i].ID < snap.ProcessingItems[j].ID })
	sort.Slice(snap.Activities, func(i, j int) bool { return snap.Activities[i].ID < snap.Activities[j].ID })
	return snap
}

// ImportSnapshot replaces all store state with the snapshot contents.
// Current state is cleared first; a malformed record aborts the whole
// import and leaves the store cleared, matching the no-partial-apply
// contract. Next-id counters are recomputed as max(id)+1 per entity
// type, defaulting to 1 for empty collections.
func (s *Store) ImportSnapshot(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("import: snapshot is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()

	// Validate every record before inserting any, so a malformed record
	// partway through never leaves a half-loaded store behind.
	if err := validateSnapshotRecords(snap); err != nil {
		return err
	}

	for _, j := range snap.JobPositions {
		s.jobPositions[j.ID] = copyJobPosition(j)
		if j.ID >= s.nextJobID {
			s.nextJobID = j.ID + 1
		}
	}
	for _, c := range snap.Candidates {
		s.candidates[c.ID] = c
		if c.ID >= s.nextCandidateID {
			s.nextCandidateID = c.ID + 1
		}
	}
	for _, a := range snap.Analyses {
		s.analyses[a.ID] = copyAnalysis(a)
		if a.ID >= s.nextAnalysisID {
			s.nextAnalysisID = a.ID + 1
		}
	}
	for _, p := range snap.ProcessingItems {
		s.processingItems[p.ID] = p
		if p.ID >= s.nextProcessingID {
			s.nextProcessingID = p.ID + 1
		}
	}
	for _, a := range snap.Activities {
		s.activities[a.ID] = a
		if a.ID >= s.nextActivityID {
			s.nextActivityID = a.ID + 1
		}
	}

	log.Printf("store: imported snapshot (%d jobs, %d candidates, %d analyses)",
		len(s.jobPositions), len(s.candidates), len(s.analyses))
	return nil
}

func validateSnapshotRecords(snap *Snapshot) error {
	for _, j := range snap.JobPositions {
		if j.ID <= 0 {
			return fmt.Errorf("import: job position with invalid id %d", j.ID)
		}
	}
	for _, c := range snap.Candidates {
		if c.ID <= 0 {
			return fmt.Errorf("import: candidate with invalid id %d", c.ID)
		}
	}
	for _, a := range snap.Analyses {
		if a.ID <= 0 {
			return fmt.Errorf("import: analysis with invalid id %d", a.ID)
		}
		if a.CandidateID <= 0 {
			return fmt.Errorf("import: analysis %d missing candidate reference", a.ID)
		}
	}
	for _, p := range snap.ProcessingItems {
		if p.ID <= 0 {
			return fmt.Errorf("import: processing item with invalid id %d", p.ID)
		}
	}
	for _, a := range snap.Activities {
		if a.ID <= 0 {
			return fmt.Errorf("import: activity with invalid id %d", a.ID)
		}
	}
	return nil
}

// DecodeSnapshot parses snapshot JSON. Timestamp fields must be valid
// RFC 3339 strings or decoding fails.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
