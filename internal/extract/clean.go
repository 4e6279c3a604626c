package extract

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// CleanText normalizes extracted text: whitespace runs (including
// newlines) collapse to single spaces, NUL and BOM characters are
// stripped, and the result is trimmed.
func CleanText(text string) string {
	cleaned := whitespaceRuns.ReplaceAllString(text, " ")
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")
	cleaned = strings.ReplaceAll(cleaned, "\uFEFF", "")
	return strings.TrimSpace(cleaned)
}
