package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/resume-screener/internal/stats"
)

// ---------------------------------------------------------------------
// Candidate Handlers
// ---------------------------------------------------------------------

// handleListCandidates returns all candidates with their latest analysis
// scores flattened in.
func (s *Server) handleListCandidates(w http.ResponseWriter, _ *http.Request) {
	candidates := s.store.CandidatesWithAnalysis()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// handleGetCandidate returns one candidate with its latest analysis.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, ok := s.store.Candidate(id)
	if !ok {
		err := &ErrNotFound{Entity: "candidate", ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := map[string]any{
		"candidate": candidate,
		"file_size": stats.FormatFileSize(candidate.FileSize),
		"uploaded":  stats.FormatRelativeTime(candidate.UploadedAt, time.Now()),
	}
	if analysis, ok := s.store.CandidateAnalysis(id); ok {
		response["analysis"] = analysis
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// handleExportCandidatesCSV streams the candidate list as a CSV download.
func (s *Server) handleExportCandidatesCSV(w http.ResponseWriter, _ *http.Request) {
	csvData, err := stats.ExportCandidatesCSV(s.store.CandidatesWithAnalysis())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build CSV: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="candidates.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvData)); err != nil {
		return
	}
}
