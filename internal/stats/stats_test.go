package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/store"
)

func candidateView(score int, uploadedAt time.Time, skills ...string) store.CandidateView {
	return store.CandidateView{
		Candidate: store.Candidate{
			Name:       "John Smith",
			UploadedAt: uploadedAt,
		},
		OverallScore:    score,
		ExtractedSkills: skills,
	}
}

func TestBuildDashboard_EmptyPool(t *testing.T) {
	d := BuildDashboard(nil)

	assert.Zero(t, d.TotalApplications)
	assert.Zero(t, d.QualifiedRate)
	assert.NotNil(t, d.TimelineLabels)
	assert.Empty(t, d.TimelineLabels)
}

func TestBuildDashboard_ScoreBuckets(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d := BuildDashboard([]store.CandidateView{
		candidateView(85, day),
		candidateView(80, day),
		candidateView(65, day),
		candidateView(45, day),
		candidateView(10, day),
	})

	assert.Equal(t, [4]int{2, 1, 1, 1}, d.ScoreDistribution)
}

func TestBuildDashboard_QualifiedRateRounded(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d := BuildDashboard([]store.CandidateView{
		candidateView(70, day),
		candidateView(75, day),
		candidateView(30, day),
	})

	// 2 of 3 qualified
	assert.Equal(t, 66.7, d.QualifiedRate)
}

func TestBuildDashboard_AverageScore(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d := BuildDashboard([]store.CandidateView{
		candidateView(60, day),
		candidateView(71, day),
	})

	assert.Equal(t, 65.5, d.AvgScore)
}

func TestBuildDashboard_TimelineGroupedByDay(t *testing.T) {
	first := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	d := BuildDashboard([]store.CandidateView{
		candidateView(50, first),
		candidateView(60, first.Add(2*time.Hour)),
		candidateView(70, second),
	})

	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, d.TimelineLabels)
	assert.Equal(t, []int{2, 1}, d.TimelineData)
}
