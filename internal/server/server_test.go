package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/analyze"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extract"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Port:           "0",
		UploadDir:      t.TempDir(),
		MaxUploadBytes: config.DefaultMaxUploadBytes,
		TesseractCmd:   "tesseract",
	}
	st := store.New()
	pipeline := screening.NewPipeline(
		extract.NewExtractor(cfg.MaxUploadBytes, cfg.TesseractCmd),
		analyze.NewAnalyzer(nil),
		st,
	)
	srv, err := New(cfg, st, pipeline)
	require.NoError(t, err)
	return srv
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleHealth_ReturnsOK(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestHandleCreateJobPosition_Succeeds(t *testing.T) {
	srv := newTestServer(t)
	payload := `{"title":"Software Engineer","department":"Tech","requirements":["Python","Flask"]}`
	rec := httptest.NewRecorder()

	srv.handleCreateJobPosition(rec, httptest.NewRequest(http.MethodPost, "/api/job-positions", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Software Engineer", body["title"])
	assert.Equal(t, true, body["is_active"])

	// Creation is logged to the activity feed.
	activities := srv.store.RecentActivities(10)
	require.Len(t, activities, 1)
	assert.Equal(t, store.ActivityJobPositionCreated, activities[0].Type)
}

func TestHandleCreateJobPosition_MissingTitleRejected(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.handleCreateJobPosition(rec, httptest.NewRequest(http.MethodPost, "/api/job-positions", strings.NewReader(`{"department":"Tech"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateJobPosition_MalformedBodyRejected(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.handleCreateJobPosition(rec, httptest.NewRequest(http.MethodPost, "/api/job-positions", strings.NewReader(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateJobPosition_PatchesFields(t *testing.T) {
	srv := newTestServer(t)
	id := srv.store.AddJobPosition(store.JobPositionInput{Title: "Software Engineer", IsActive: true})

	req := httptest.NewRequest(http.MethodPut, "/api/job-positions/1", strings.NewReader(`{"is_active":false}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	srv.handleUpdateJobPosition(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	job, ok := srv.store.JobPosition(id)
	require.True(t, ok)
	assert.False(t, job.IsActive)
	assert.Equal(t, "Software Engineer", job.Title)
}

func TestHandleUpdateJobPosition_UnknownIDReturns404(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/job-positions/99", strings.NewReader(`{"title":"New"}`))
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()

	srv.handleUpdateJobPosition(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListCandidates_JoinsAnalysisScores(t *testing.T) {
	srv := newTestServer(t)
	candID := srv.store.AddCandidate(store.CandidateInput{Name: "John Smith"})
	srv.store.AddAnalysis(store.AnalysisInput{CandidateID: candID, OverallScore: 75})

	rec := httptest.NewRecorder()
	srv.handleListCandidates(rec, httptest.NewRequest(http.MethodGet, "/api/candidates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
	candidates := body["candidates"].([]any)
	first := candidates[0].(map[string]any)
	assert.Equal(t, float64(75), first["overall_score"])
}

func TestHandleGetCandidate_NotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()

	srv.handleGetCandidate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetCandidate_IncludesAnalysis(t *testing.T) {
	srv := newTestServer(t)
	candID := srv.store.AddCandidate(store.CandidateInput{Name: "John Smith", FileSize: 2048})
	srv.store.AddAnalysis(store.AnalysisInput{CandidateID: candID, OverallScore: 80})

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	srv.handleGetCandidate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Contains(t, body, "analysis")
	assert.Equal(t, "2.0 KB", body["file_size"])
}

func TestHandleDashboardStats_EmptyStore(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.handleDashboardStats(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard-stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["total_applications"])
}

func TestHandleRecentActivities_RespectsLimit(t *testing.T) {
	srv := newTestServer(t)
	for range 5 {
		srv.store.AddActivity(store.ActivityInput{Type: store.ActivityResumeUploaded, Description: "upload"})
	}

	rec := httptest.NewRecorder()
	srv.handleRecentActivities(rec, httptest.NewRequest(http.MethodGet, "/api/activities?limit=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
}

func TestHandleRecentActivities_BadLimitRejected(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.handleRecentActivities(rec, httptest.NewRequest(http.MethodGet, "/api/activities?limit=zero", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportCandidatesCSV_SetsDownloadHeaders(t *testing.T) {
	srv := newTestServer(t)
	srv.store.AddCandidate(store.CandidateInput{Name: "John Smith"})

	rec := httptest.NewRecorder()
	srv.handleExportCandidatesCSV(rec, httptest.NewRequest(http.MethodGet, "/api/candidates/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "John Smith")
}

func TestSnapshotExportImport_RoundTripOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	candID := srv.store.AddCandidate(store.CandidateInput{Name: "John Smith"})
	srv.store.AddAnalysis(store.AnalysisInput{CandidateID: candID, OverallScore: 75})

	exportRec := httptest.NewRecorder()
	srv.handleExportSnapshot(exportRec, httptest.NewRequest(http.MethodGet, "/api/snapshot", nil))
	require.Equal(t, http.StatusOK, exportRec.Code)

	srv.store.Clear()
	require.Zero(t, srv.store.Counts()["candidates"])

	importRec := httptest.NewRecorder()
	srv.handleImportSnapshot(importRec, httptest.NewRequest(http.MethodPost, "/api/snapshot", bytes.NewReader(exportRec.Body.Bytes())))

	require.Equal(t, http.StatusOK, importRec.Code)
	assert.Equal(t, 1, srv.store.Counts()["candidates"])
	assert.Equal(t, 1, srv.store.Counts()["analyses"])
}

func TestHandleImportSnapshot_SchemaViolationRejected(t *testing.T) {
	srv := newTestServer(t)
	srv.store.AddCandidate(store.CandidateInput{Name: "Kept"})

	// Negative id violates the schema before the store is touched.
	payload := `{"job_positions":[],"candidates":[{"id":-1,"name":"Bad","uploaded_at":"2025-06-01T10:00:00Z"}],` +
		`"analyses":[],"processing_items":[],"activities":[],"export_timestamp":"2025-06-01T10:00:00Z"}`
	rec := httptest.NewRecorder()

	srv.handleImportSnapshot(rec, httptest.NewRequest(http.MethodPost, "/api/snapshot", strings.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, srv.store.Counts()["candidates"])
}

func TestHandleClearData_WipesStore(t *testing.T) {
	srv := newTestServer(t)
	srv.store.AddCandidate(store.CandidateInput{Name: "John Smith"})

	rec := httptest.NewRecorder()
	srv.handleClearData(rec, httptest.NewRequest(http.MethodDelete, "/api/data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, srv.store.Counts()["candidates"])
}

func TestHandleUpload_MissingFileRejected(t *testing.T) {
	srv := newTestServer(t)

	body := &bytes.Buffer{}
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	rec := httptest.NewRecorder()

	srv.handleUpload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
