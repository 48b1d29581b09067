package emotion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServerModelPredict(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/detect", r.URL.Path)

			var req detectRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "great news everyone", req.Text)

			json.NewEncoder(w).Encode(detectResponse{
				Emotions: []detectScore{
					{Label: "joy", Score: 0.8},
					{Label: "surprise", Score: 0.2},
				},
				DominantEmotion: "joy",
			})
		}))
		defer srv.Close()

		m := NewServerModel(srv.URL)
		scores, err := m.Predict(context.Background(), "great news everyone")
		require.NoError(t, err)
		require.InDelta(t, 0.8, scores["joy"], 1e-9)
		require.InDelta(t, 0.2, scores["surprise"], 1e-9)
	})

	t.Run("non-200 response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		m := NewServerModel(srv.URL)
		_, err := m.Predict(context.Background(), "hello")
		require.ErrorContains(t, err, "model not loaded")
	})

	t.Run("empty score list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(detectResponse{})
		}))
		defer srv.Close()

		m := NewServerModel(srv.URL)
		_, err := m.Predict(context.Background(), "hello")
		require.ErrorContains(t, err, "no scores")
	})
}
