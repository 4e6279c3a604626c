package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/store"
)

func TestGenerateInsights_EmptyPool(t *testing.T) {
	report := GenerateInsights(nil)

	assert.Zero(t, report.Total)
	assert.Empty(t, report.Insights)
}

func TestGenerateInsights_ScoreDistributionCounts(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	report := GenerateInsights([]store.CandidateView{
		candidateView(90, day),
		candidateView(65, day),
		candidateView(20, day),
	})

	require.NotEmpty(t, report.Insights)
	assert.Equal(t, "score_distribution", report.Insights[0].Type)
	assert.Equal(t, "1 high (80+), 1 medium (60-79), 1 low (<60)", report.Insights[0].Description)
}

func TestGenerateInsights_TopSkillsByFrequency(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	report := GenerateInsights([]store.CandidateView{
		candidateView(50, day, "Python", "Java"),
		candidateView(50, day, "Python"),
		candidateView(50, day, "AWS"),
	})

	var topSkillsInsight string
	for _, ins := range report.Insights {
		if ins.Type == "top_skills" {
			topSkillsInsight = ins.Description
		}
	}
	assert.Equal(t, "Python (2), AWS (1), Java (1)", topSkillsInsight)
}

func TestGenerateInsights_NoSkillsOmitsTopSkills(t *testing.T) {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	report := GenerateInsights([]store.CandidateView{candidateView(50, day)})

	for _, ins := range report.Insights {
		assert.NotEqual(t, "top_skills", ins.Type)
	}
}
