package server

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/extract"
	"github.com/jonathan/resume-screener/internal/screening"
)

// ---------------------------------------------------------------------
// Upload Handlers
// ---------------------------------------------------------------------

// handleUpload accepts one resume under the "resume" multipart field,
// with an optional "job_position_id" form value.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.checkUploadLimit(w, r) {
		return
	}

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume file")
		return
	}
	defer file.Close()

	if !extract.AllowedFile(header.Filename) {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Unsupported file type: %s", header.Filename))
		return
	}

	jobID, err := s.formJobID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	storedPath, err := s.saveUpload(file, header.Filename)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload: "+err.Error())
		return
	}

	result, err := s.pipeline.ProcessFile(r.Context(), storedPath, header.Filename, jobID)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), result)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleBulkUpload accepts several resumes under the "resumes" field and
// processes them concurrently.
func (s *Server) handleBulkUpload(w http.ResponseWriter, r *http.Request) {
	if !s.checkUploadLimit(w, r) {
		return
	}

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	headers := r.MultipartForm.File["resumes"]
	if len(headers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No resume files provided")
		return
	}

	jobID, err := s.formJobID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	files := make([]screening.BatchFile, 0, len(headers))
	for _, header := range headers {
		if !extract.AllowedFile(header.Filename) {
			log.Printf("bulk upload: skipping unsupported file %s", header.Filename)
			continue
		}
		f, err := header.Open()
		if err != nil {
			log.Printf("bulk upload: cannot open %s: %v", header.Filename, err)
			continue
		}
		storedPath, err := s.saveUpload(f, header.Filename)
		f.Close()
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload: "+err.Error())
			return
		}
		files = append(files, screening.BatchFile{Path: storedPath, OriginalName: header.Filename})
	}
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No processable resume files provided")
		return
	}

	results := s.pipeline.ProcessBatch(r.Context(), files, jobID)

	succeeded := 0
	for _, res := range results {
		if res.Success {
			succeeded++
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results":   results,
		"total":     len(results),
		"succeeded": succeeded,
	})
}

// handleProcessingQueue lists processing items, oldest first.
func (s *Server) handleProcessingQueue(w http.ResponseWriter, _ *http.Request) {
	queue := s.store.ProcessingQueue()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"queue": queue,
		"count": len(queue),
	})
}

// saveUpload writes the uploaded file into the upload directory under a
// uuid-prefixed name, so concurrent uploads of the same filename never
// collide.
func (s *Server) saveUpload(src multipart.File, originalName string) (string, error) {
	storedName := uuid.NewString() + "_" + filepath.Base(originalName)
	storedPath := filepath.Join(s.cfg.UploadDir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", storedPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(storedPath)
		return "", fmt.Errorf("write %s: %w", storedPath, err)
	}
	return storedPath, nil
}

// formJobID parses the optional job_position_id form value.
func (s *Server) formJobID(r *http.Request) (int, error) {
	raw := r.FormValue("job_position_id")
	if raw == "" {
		return 0, nil
	}
	jobID, err := strconv.Atoi(raw)
	if err != nil || jobID < 0 {
		return 0, &ErrValidation{Field: "job_position_id", Message: fmt.Sprintf("invalid value %q", raw)}
	}
	return jobID, nil
}
