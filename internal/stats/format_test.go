package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize_Bytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatFileSize(0))
	assert.Equal(t, "512 B", FormatFileSize(512))
}

func TestFormatFileSize_LargerUnits(t *testing.T) {
	assert.Equal(t, "2.0 KB", FormatFileSize(2048))
	assert.Equal(t, "1.5 MB", FormatFileSize(1536*1024))
}

func TestFormatRelativeTime_Buckets(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", FormatRelativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "1 minute ago", FormatRelativeTime(now.Add(-time.Minute), now))
	assert.Equal(t, "5 minutes ago", FormatRelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3 hours ago", FormatRelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 days ago", FormatRelativeTime(now.Add(-48*time.Hour), now))
}

func TestFormatSkillsList_Empty(t *testing.T) {
	assert.Equal(t, "No skills identified", FormatSkillsList(nil, 3))
}

func TestFormatSkillsList_TruncatesWithSuffix(t *testing.T) {
	skills := []string{"Python", "Java", "AWS", "CSS", "HTML"}

	assert.Equal(t, "AWS, CSS, HTML and 2 more", FormatSkillsList(skills, 3))
}

func TestFormatSkillsList_Deduplicates(t *testing.T) {
	assert.Equal(t, "Python", FormatSkillsList([]string{"Python", "Python"}, 3))
}
