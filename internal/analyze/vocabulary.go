package analyze

import (
	"fmt"
	"os"
	"strings"
)

// Vocabulary is the reference list of skill keywords the analyzer scans
// for. It is an ordered lookup table so the taxonomy can be swapped
// without code changes; extracted skills are reported in vocabulary
// order, not text order.
type Vocabulary []string

// DefaultVocabulary returns the built-in reference skill list.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"Java", "PHP", "HTML", "CSS", "JavaScript", "Firebase", "MySQL",
		"AWS", "Android Studio", "Teamwork", "VS Code", "X Code", "Python", "Flask",
	}
}

// LoadVocabularyFile reads a skill list from a file, one skill per line.
// Blank lines and lines starting with # are skipped.
func LoadVocabularyFile(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file %s: %w", path, err)
	}
	var vocab Vocabulary
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vocab = append(vocab, line)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}
	return vocab, nil
}

// educationKeywords are degree tokens whose presence (as a raw substring)
// bumps the education score.
var educationKeywords = []string{"B.Sc", "MCA", "B.Tech", "M.Tech", "Bachelor", "Master"}
