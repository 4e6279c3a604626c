package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenEnvUnset(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("TESSERACT_CMD", "")
	t.Setenv("SEED_SAMPLE_DATA", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultUploadDir, cfg.UploadDir)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, DefaultTesseractCmd, cfg.TesseractCmd)
	assert.False(t, cfg.SeedSampleData)
}

func TestLoad_ReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_DIR", "/tmp/resumes")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("SEED_SAMPLE_DATA", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/resumes", cfg.UploadDir)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.True(t, cfg.SeedSampleData)
}

func TestLoad_RejectsNonNumericUploadLimit(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadSeedFlag(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("SEED_SAMPLE_DATA", "maybe")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_RejectsNonPositiveUploadLimit(t *testing.T) {
	cfg := &Config{Port: "5000", UploadDir: "uploads", MaxUploadBytes: 0}
	assert.Error(t, cfg.Validate())
}
