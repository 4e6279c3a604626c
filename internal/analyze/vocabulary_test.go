package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVocabularyFile_SkipsBlanksAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	content := "# backend skills\nGo\n\nPython\n  Kubernetes  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	vocab, err := LoadVocabularyFile(path)
	require.NoError(t, err)

	assert.Equal(t, Vocabulary{"Go", "Python", "Kubernetes"}, vocab)
}

func TestLoadVocabularyFile_EmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n# nothing here\n"), 0o644))

	_, err := LoadVocabularyFile(path)
	assert.Error(t, err)
}

func TestLoadVocabularyFile_MissingFileFails(t *testing.T) {
	_, err := LoadVocabularyFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
