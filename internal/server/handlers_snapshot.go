package server

import (
	"io"
	"net/http"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/store"
)

// ---------------------------------------------------------------------
// Snapshot Handlers
// ---------------------------------------------------------------------

// maxSnapshotBytes bounds the accepted import payload.
const maxSnapshotBytes = 256 * 1024 * 1024

func (s *Server) handleExportSnapshot(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.ExportSnapshot()
	w.Header().Set("Content-Disposition", `attachment; filename="snapshot.json"`)
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleImportSnapshot replaces all store state with the posted snapshot.
// The document is schema-validated before any state is touched; a record
// that fails the store's own checks still aborts with the store cleared.
func (s *Server) handleImportSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateSnapshot(data); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	snap, err := store.DecodeSnapshot(data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.ImportSnapshot(snap); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "imported",
		"counts": s.store.Counts(),
	})
}

// handleClearData wipes all stored candidates, analyses and activity.
func (s *Server) handleClearData(w http.ResponseWriter, _ *http.Request) {
	s.store.Clear()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}
