package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/resume-screener/internal/stats"
)

// ---------------------------------------------------------------------
// Dashboard Handlers
// ---------------------------------------------------------------------

const defaultActivityLimit = 10

func (s *Server) handleDashboardStats(w http.ResponseWriter, _ *http.Request) {
	dashboard := stats.BuildDashboard(s.store.CandidatesWithAnalysis())
	s.jsonResponse(w, http.StatusOK, dashboard)
}

func (s *Server) handleInsights(w http.ResponseWriter, _ *http.Request) {
	report := stats.GenerateInsights(s.store.CandidatesWithAnalysis())
	s.jsonResponse(w, http.StatusOK, report)
}

// handleRecentActivities returns the newest activities with a relative
// timestamp rendered for display. The limit query parameter caps the count.
func (s *Server) handleRecentActivities(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	now := time.Now()
	activities := s.store.RecentActivities(limit)
	items := make([]map[string]any, 0, len(activities))
	for _, a := range activities {
		items = append(items, map[string]any{
			"activity": a,
			"when":     stats.FormatRelativeTime(a.CreatedAt, now),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"activities": items,
		"count":      len(items),
	})
}
