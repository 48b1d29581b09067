package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	UploadDir      string
	SegmentWindow  time.Duration
	Workers        int
	FFmpegPath     string
	MaxUploadBytes int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		FFmpegPath:     getEnv("FFMPEG_PATH", "ffmpeg"),
		MaxUploadBytes: 25 * 1024 * 1024,
	}

	seconds, err := getEnvInt("SEGMENT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	if seconds <= 0 {
		return nil, fmt.Errorf("SEGMENT_SECONDS must be positive, got %d", seconds)
	}
	cfg.SegmentWindow = time.Duration(seconds) * time.Second

	workers, err := getEnvInt("PIPELINE_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		return nil, fmt.Errorf("PIPELINE_WORKERS must be positive, got %d", workers)
	}
	cfg.Workers = workers

	// STT and emotion provider credentials are validated by their
	// factories when the first analysis runs.

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
