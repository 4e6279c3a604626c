// Package stats computes dashboard aggregates, insights and exports
// from stored candidate data.
package stats

import (
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/store"
)

// qualifiedThreshold is the overall score at or above which a candidate
// counts as qualified.
const qualifiedThreshold = 70

// Dashboard holds the aggregate view consumed by the dashboard and
// analytics pages. ScoreDistribution buckets are >=80, 60-79, 40-59, <40.
type Dashboard struct {
	TotalApplications int      `json:"total_applications"`
	QualifiedRate     float64  `json:"qualified_rate"`
	AvgScore          float64  `json:"avg_score"`
	ScoreDistribution [4]int   `json:"score_distribution"`
	TimelineLabels    []string `json:"timeline_labels"`
	TimelineData      []int    `json:"timeline_data"`
}

// BuildDashboard aggregates candidate views into dashboard statistics.
// Rates are percentages rounded to one decimal, the average score to two.
func BuildDashboard(candidates []store.CandidateView) Dashboard {
	d := Dashboard{
		TotalApplications: len(candidates),
		TimelineLabels:    []string{},
		TimelineData:      []int{},
	}
	if len(candidates) == 0 {
		return d
	}

	qualified := 0
	sum := 0
	timeline := map[string]int{}
	for _, c := range candidates {
		score := c.OverallScore
		sum += score
		if score >= qualifiedThreshold {
			qualified++
		}
		switch {
		case score >= 80:
			d.ScoreDistribution[0]++
		case score >= 60:
			d.ScoreDistribution[1]++
		case score >= 40:
			d.ScoreDistribution[2]++
		default:
			d.ScoreDistribution[3]++
		}
		timeline[c.UploadedAt.Format("2006-01-02")]++
	}

	d.QualifiedRate = round1(float64(qualified) / float64(len(candidates)) * 100)
	d.AvgScore = round2(float64(sum) / float64(len(candidates)))

	days := make([]string, 0, len(timeline))
	for day := range timeline {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		d.TimelineLabels = append(d.TimelineLabels, day)
		d.TimelineData = append(d.TimelineData, timeline[day])
	}
	return d
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
