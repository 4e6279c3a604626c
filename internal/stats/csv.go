package stats

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/store"
)

// ExportCandidatesCSV renders candidate views as CSV for download.
func ExportCandidatesCSV(candidates []store.CandidateView) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"Name", "Email", "Phone", "Overall Score", "Skills Score",
		"Experience Score", "Education Score", "Top Skills", "Upload Date",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range candidates {
		topSkills := "None"
		if len(c.ExtractedSkills) > 0 {
			n := len(c.ExtractedSkills)
			if n > 3 {
				n = 3
			}
			topSkills = strings.Join(c.ExtractedSkills[:n], ", ")
		}
		record := []string{
			c.Name,
			c.Email,
			c.Phone,
			fmt.Sprintf("%d", c.OverallScore),
			fmt.Sprintf("%d", c.SkillsScore),
			fmt.Sprintf("%d", c.ExperienceScore),
			fmt.Sprintf("%d", c.EducationScore),
			topSkills,
			c.UploadedAt.Format("01/02/2006"),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}
