package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/store"
)

func TestAnalyze_EmptyInputFails(t *testing.T) {
	a := NewAnalyzer(nil)

	_, err := a.Analyze("   \n\t  ", nil)

	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
}

func TestAnalyze_AllRequirementsMetScoresFullSkills(t *testing.T) {
	a := NewAnalyzer(nil)
	job := &store.JobPosition{Title: "Software Engineer", Requirements: []string{"Python"}}

	report, err := a.Analyze("Experienced Python developer.", job)
	require.NoError(t, err)

	assert.Equal(t, 100, report.SkillsScore)
	assert.Equal(t, []string{"Python"}, report.MatchedSkills)
}

func TestAnalyze_HalfRequirementsMetRoundsScore(t *testing.T) {
	a := NewAnalyzer(nil)
	job := &store.JobPosition{Requirements: []string{"Python", "Flask"}}

	report, err := a.Analyze("I write Python every day.", job)
	require.NoError(t, err)

	assert.Equal(t, 50, report.SkillsScore)
}

func TestAnalyze_NoJobScoresAgainstVocabulary(t *testing.T) {
	a := NewAnalyzer(Vocabulary{"Python", "Java"})

	report, err := a.Analyze("Python only here.", nil)
	require.NoError(t, err)

	assert.Equal(t, 50, report.SkillsScore)
	assert.Equal(t, []string{"Python"}, report.ExtractedSkills)
}

func TestAnalyze_LongResumeCapsExperienceAtHundred(t *testing.T) {
	a := NewAnalyzer(nil)
	text := strings.Repeat("word ", 2000)

	report, err := a.Analyze(text, nil)
	require.NoError(t, err)

	assert.Equal(t, 100, report.ExperienceScore)
}

func TestAnalyze_ShortResumeGetsExperienceFloor(t *testing.T) {
	a := NewAnalyzer(nil)

	report, err := a.Analyze("Short resume text.", nil)
	require.NoError(t, err)

	assert.Equal(t, 30, report.ExperienceScore)
}

func TestAnalyze_ThousandWordsScoresFiftyExperience(t *testing.T) {
	a := NewAnalyzer(nil)
	text := strings.Repeat("word ", 1000)

	report, err := a.Analyze(text, nil)
	require.NoError(t, err)

	assert.Equal(t, 50, report.ExperienceScore)
}

func TestAnalyze_DegreeKeywordRaisesEducationScore(t *testing.T) {
	a := NewAnalyzer(nil)

	report, err := a.Analyze("Completed B.Tech in Computer Science.", nil)
	require.NoError(t, err)

	assert.Equal(t, 70, report.EducationScore)
}

func TestAnalyze_EducationKeywordIsCaseSensitive(t *testing.T) {
	a := NewAnalyzer(nil)

	report, err := a.Analyze("completed b.tech in computer science.", nil)
	require.NoError(t, err)

	assert.Equal(t, 50, report.EducationScore)
}

func TestAnalyze_OverallIsMeanOfComponents(t *testing.T) {
	a := NewAnalyzer(nil)
	job := &store.JobPosition{Requirements: []string{"Python"}}

	// skills=100, experience=30, education=70 -> floor(200/3)=66
	report, err := a.Analyze("Python developer with a Bachelor degree.", job)
	require.NoError(t, err)

	assert.Equal(t, 66, report.OverallScore)
}

func TestAnalyze_ScoresStayWithinRange(t *testing.T) {
	a := NewAnalyzer(nil)
	text := "Java PHP HTML CSS JavaScript Firebase MySQL AWS Python Flask Teamwork " +
		strings.Repeat("experience ", 500) + " M.Tech"

	report, err := a.Analyze(text, nil)
	require.NoError(t, err)

	for _, score := range []int{report.OverallScore, report.SkillsScore, report.ExperienceScore, report.EducationScore} {
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestExtractSkills_WholeWordCaseInsensitive(t *testing.T) {
	a := NewAnalyzer(nil)

	skills := a.ExtractSkills("Skilled in python and JAVA, not javac.")

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Java")
	assert.NotContains(t, skills, "JavaScript")
}

func TestExtractSkills_NoMatchesReturnsEmptySlice(t *testing.T) {
	a := NewAnalyzer(nil)

	skills := a.ExtractSkills("Professional gardener.")

	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestMatchJobSkills_RequirementMatchIsCaseInsensitive(t *testing.T) {
	job := &store.JobPosition{Requirements: []string{"PYTHON"}}

	matched := matchJobSkills([]string{"Python", "Java"}, job)

	assert.Equal(t, []string{"Python"}, matched)
}
