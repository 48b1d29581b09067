package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SEGMENT_SECONDS", "")
		t.Setenv("PIPELINE_WORKERS", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "8080", cfg.Port)
		require.Equal(t, "uploads", cfg.UploadDir)
		require.Equal(t, 10*time.Second, cfg.SegmentWindow)
		require.Equal(t, 4, cfg.Workers)
		require.Equal(t, "ffmpeg", cfg.FFmpegPath)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("SEGMENT_SECONDS", "5")
		t.Setenv("PIPELINE_WORKERS", "2")
		t.Setenv("FFMPEG_PATH", "/usr/local/bin/ffmpeg")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "9090", cfg.Port)
		require.Equal(t, 5*time.Second, cfg.SegmentWindow)
		require.Equal(t, 2, cfg.Workers)
		require.Equal(t, "/usr/local/bin/ffmpeg", cfg.FFmpegPath)
	})

	t.Run("invalid segment seconds", func(t *testing.T) {
		t.Setenv("SEGMENT_SECONDS", "zero")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non-positive segment seconds", func(t *testing.T) {
		t.Setenv("SEGMENT_SECONDS", "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non-positive workers", func(t *testing.T) {
		t.Setenv("PIPELINE_WORKERS", "-1")
		_, err := Load()
		require.Error(t, err)
	})
}
