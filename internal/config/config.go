// Package config provides environment-based configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort           = "5000"
	DefaultUploadDir      = "uploads"
	DefaultMaxUploadBytes = 100 * 1024 * 1024
	DefaultTesseractCmd   = "tesseract"
)

// Config holds the runtime settings for the screening server.
type Config struct {
	Port           string // HTTP listen port
	UploadDir      string // Directory for uploaded resume files
	MaxUploadBytes int64  // Maximum accepted resume size in bytes
	TesseractCmd   string // Tesseract binary used for scanned-PDF OCR
	SkillVocabFile string // Optional file overriding the built-in skill list
	SeedSampleData bool   // Seed a couple of job positions on startup
}

// Load reads configuration from the environment. Call godotenv.Load
// before Load if a .env file should be honored.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           envOrDefault("PORT", DefaultPort),
		UploadDir:      envOrDefault("UPLOAD_DIR", DefaultUploadDir),
		MaxUploadBytes: DefaultMaxUploadBytes,
		TesseractCmd:   envOrDefault("TESSERACT_CMD", DefaultTesseractCmd),
		SkillVocabFile: os.Getenv("SKILL_VOCAB_FILE"),
	}

	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config error: MAX_UPLOAD_BYTES must be an integer, got %q", raw)
		}
		cfg.MaxUploadBytes = n
	}
	if raw := os.Getenv("SEED_SAMPLE_DATA"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("config error: SEED_SAMPLE_DATA must be a boolean, got %q", raw)
		}
		cfg.SeedSampleData = b
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("config error: PORT must not be empty")
	}
	if c.UploadDir == "" {
		return fmt.Errorf("config error: UPLOAD_DIR must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
