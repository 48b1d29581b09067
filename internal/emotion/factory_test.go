package emotion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateModel(t *testing.T) {
	t.Run("unsupported provider", func(t *testing.T) {
		t.Setenv("EMOTION_PROVIDER", "vibes")
		_, err := CreateModel()
		require.ErrorContains(t, err, "unsupported emotion provider")
	})

	t.Run("openai requires api key", func(t *testing.T) {
		t.Setenv("EMOTION_PROVIDER", "openai")
		t.Setenv("OPENAI_API_KEY", "")
		_, err := CreateModel()
		require.ErrorContains(t, err, "OPENAI_API_KEY")
	})

	t.Run("openai", func(t *testing.T) {
		t.Setenv("EMOTION_PROVIDER", "openai")
		t.Setenv("OPENAI_API_KEY", "sk-test")
		m, err := CreateModel()
		require.NoError(t, err)
		require.Equal(t, "openai", m.Name())
	})

	t.Run("server requires url", func(t *testing.T) {
		t.Setenv("EMOTION_PROVIDER", "server")
		t.Setenv("EMOTION_SERVER_URL", "")
		_, err := CreateModel()
		require.ErrorContains(t, err, "EMOTION_SERVER_URL")
	})

	t.Run("server", func(t *testing.T) {
		t.Setenv("EMOTION_PROVIDER", "server")
		t.Setenv("EMOTION_SERVER_URL", "http://localhost:9000")
		m, err := CreateModel()
		require.NoError(t, err)
		require.Equal(t, "server", m.Name())
	})
}
