// Package analyze scores resume text against a job's requirements using
// keyword matching: a reference skill vocabulary, word-count experience
// heuristics and degree-keyword education checks.
package analyze

import (
	"log"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/store"
)

const (
	// noRequirementsScore is used when the skill denominator is zero.
	noRequirementsScore = 50

	minExperienceScore = 30
	maxScore           = 100

	// wordsPerExperiencePoint converts raw text length into the
	// experience proxy: 1000 words scores 50.
	wordsPerExperiencePoint = 20

	educationMatchScore   = 70
	educationDefaultScore = 50
)

// Report bundles the analysis output for one resume.
type Report struct {
	OverallScore    int         `json:"overall_score"`
	SkillsScore     int         `json:"skills_score"`
	ExperienceScore int         `json:"experience_score"`
	EducationScore  int         `json:"education_score"`
	ExtractedSkills []string    `json:"extracted_skills"`
	MatchedSkills   []string    `json:"matched_skills"`
	KeyPoints       []string    `json:"key_points"`
	Recommendations string      `json:"recommendations"`
	Contact         ContactInfo `json:"contact_info"`
}

// Raw flattens the report into a generic payload for storage alongside
// the structured score fields.
func (r *Report) Raw() map[string]any {
	return map[string]any{
		"overall_score":    r.OverallScore,
		"skills_score":     r.SkillsScore,
		"experience_score": r.ExperienceScore,
		"education_score":  r.EducationScore,
		"extracted_skills": r.ExtractedSkills,
		"matched_skills":   r.MatchedSkills,
		"key_points":       r.KeyPoints,
		"recommendations":  r.Recommendations,
		"contact_info": map[string]any{
			"name":  r.Contact.Name,
			"email": r.Contact.Email,
			"phone": r.Contact.Phone,
		},
	}
}

// Analyzer extracts skills and computes score reports. Skill patterns are
// compiled once at construction.
type Analyzer struct {
	vocab    Vocabulary
	patterns []*regexp.Regexp
}

// NewAnalyzer creates an analyzer for the given vocabulary. A nil
// vocabulary uses the default reference list.
func NewAnalyzer(vocab Vocabulary) *Analyzer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	patterns := make([]*regexp.Regexp, len(vocab))
	for i, skill := range vocab {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return &Analyzer{vocab: vocab, patterns: patterns}
}

// Analyze scores resume text, optionally against a job position. A nil
// job (or one with no requirements) scores skills against the full
// vocabulary. The only failure is empty input; everything else produces
// best-effort defaults.
func (a *Analyzer) Analyze(text string, job *store.JobPosition) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{}
	}

	extracted := a.ExtractSkills(text)
	matched := matchJobSkills(extracted, job)

	totalRequired := len(a.vocab)
	if job != nil && len(job.Requirements) > 0 {
		totalRequired = len(job.Requirements)
	}

	skillsScore := noRequirementsScore
	if totalRequired > 0 {
		skillsScore = int(math.Round(float64(len(matched)) / float64(totalRequired) * 100))
	}

	wordCount := len(strings.Fields(text))
	experienceScore := wordCount / wordsPerExperiencePoint
	if experienceScore < minExperienceScore {
		experienceScore = minExperienceScore
	}
	if experienceScore > maxScore {
		experienceScore = maxScore
	}

	educationScore := educationDefaultScore
	for _, keyword := range educationKeywords {
		if strings.Contains(text, keyword) {
			educationScore = educationMatchScore
			break
		}
	}

	overall := (clamp(skillsScore) + experienceScore + educationScore) / 3

	report := &Report{
		OverallScore:    clamp(overall),
		SkillsScore:     clamp(skillsScore),
		ExperienceScore: experienceScore,
		EducationScore:  educationScore,
		ExtractedSkills: extracted,
		MatchedSkills:   matched,
		// Key points and the recommendation are fixed copy, not derived
		// from the input; a real explanation engine would replace them.
		KeyPoints: []string{
			"Strong technical foundation",
			"Good communication skills",
			"Experience with backend technologies",
		},
		Recommendations: "Consider gaining experience with cloud platforms like AWS or GCP.",
		Contact:         ExtractContactInfo(text),
	}

	log.Printf("analyze: scored resume (overall=%d skills=%d experience=%d education=%d, %d skills found)",
		report.OverallScore, report.SkillsScore, report.ExperienceScore, report.EducationScore, len(extracted))
	return report, nil
}

// ExtractSkills returns the vocabulary entries present in the text as
// whole words, case-insensitively, in vocabulary order.
func (a *Analyzer) ExtractSkills(text string) []string {
	found := []string{}
	for i, pattern := range a.patterns {
		if pattern.MatchString(text) {
			found = append(found, a.vocab[i])
		}
	}
	return found
}

// matchJobSkills filters extracted skills to those named by the job's
// requirement list (case-insensitive exact match). Without a job or
// requirements, every extracted skill counts as matched.
func matchJobSkills(extracted []string, job *store.JobPosition) []string {
	if job == nil || len(job.Requirements) == 0 {
		return extracted
	}
	required := make(map[string]bool, len(job.Requirements))
	for _, req := range job.Requirements {
		required[strings.ToLower(req)] = true
	}
	matched := []string{}
	for _, skill := range extracted {
		if required[strings.ToLower(skill)] {
			matched = append(matched, skill)
		}
	}
	return matched
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
