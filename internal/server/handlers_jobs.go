package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-screener/internal/store"
)

// ---------------------------------------------------------------------
// Job Position Handlers
// ---------------------------------------------------------------------

type CreateJobPositionRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Department   string   `json:"department" validate:"max=100"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements" validate:"dive,min=1"`
}

type UpdateJobPositionRequest struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Department   *string   `json:"department" validate:"omitempty,max=100"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements" validate:"omitempty,dive,min=1"`
	IsActive     *bool     `json:"is_active"`
}

func (s *Server) handleListJobPositions(w http.ResponseWriter, _ *http.Request) {
	jobs := s.store.JobPositions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_positions": jobs,
		"count":         len(jobs),
	})
}

func (s *Server) handleCreateJobPosition(w http.ResponseWriter, r *http.Request) {
	var req CreateJobPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	id := s.store.AddJobPosition(store.JobPositionInput{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		IsActive:     true,
	})
	s.store.AddActivity(store.ActivityInput{
		Type:          store.ActivityJobPositionCreated,
		Description:   "Job position created: " + req.Title,
		JobPositionID: id,
	})

	job, _ := s.store.JobPosition(id)
	s.jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleUpdateJobPosition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job position ID")
		return
	}

	var req UpdateJobPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	updated := s.store.UpdateJobPosition(id, store.JobPositionPatch{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		IsActive:     req.IsActive,
	})
	if !updated {
		err := &ErrNotFound{Entity: "job position", ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	job, _ := s.store.JobPosition(id)
	s.jsonResponse(w, http.StatusOK, job)
}
