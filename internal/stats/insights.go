package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/store"
)

// Insight is one summarized observation over the candidate pool.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// InsightReport bundles pool-level insights for the analytics page.
type InsightReport struct {
	Total    int       `json:"total"`
	Insights []Insight `json:"insights"`
}

// GenerateInsights summarizes score distribution, most common skills and
// average score across all candidates.
func GenerateInsights(candidates []store.CandidateView) InsightReport {
	report := InsightReport{Total: len(candidates), Insights: []Insight{}}
	if len(candidates) == 0 {
		return report
	}

	high, medium := 0, 0
	skillFreq := map[string]int{}
	sum := 0
	for _, c := range candidates {
		switch {
		case c.OverallScore >= 80:
			high++
		case c.OverallScore >= 60:
			medium++
		}
		sum += c.OverallScore
		for _, skill := range c.ExtractedSkills {
			skillFreq[skill]++
		}
	}
	low := len(candidates) - high - medium

	report.Insights = append(report.Insights, Insight{
		Title:       "Score Distribution",
		Description: fmt.Sprintf("%d high (80+), %d medium (60-79), %d low (<60)", high, medium, low),
		Type:        "score_distribution",
	})

	if len(skillFreq) > 0 {
		report.Insights = append(report.Insights, Insight{
			Title:       "Most Common Skills",
			Description: topSkills(skillFreq, 3),
			Type:        "top_skills",
		})
	}

	report.Insights = append(report.Insights, Insight{
		Title:       "Average Score",
		Description: fmt.Sprintf("%.1f/100 across all candidates", float64(sum)/float64(len(candidates))),
		Type:        "average_score",
	})
	return report
}

// topSkills formats the n most frequent skills as "Skill (count)",
// ordered by count descending then name for a stable result.
func topSkills(freq map[string]int, n int) string {
	type entry struct {
		skill string
		count int
	}
	entries := make([]entry, 0, len(freq))
	for skill, count := range freq {
		entries = append(entries, entry{skill, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].skill < entries[j].skill
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s (%d)", e.skill, e.count)
	}
	return strings.Join(parts, ", ")
}
