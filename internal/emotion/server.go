package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ServerModel talks to a self-hosted emotion inference server over HTTP.
// The server exposes POST /detect accepting {"text": ...} and returning
// the native label scores of whatever model it wraps.
type ServerModel struct {
	url    string
	client *http.Client
}

// NewServerModel creates a new inference server client
func NewServerModel(url string) *ServerModel {
	return &ServerModel{
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Name returns the backend name
func (m *ServerModel) Name() string {
	return "server"
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type detectResponse struct {
	Emotions        []detectScore `json:"emotions"`
	DominantEmotion string        `json:"dominant_emotion"`
}

// Predict posts the text to the inference server and collects its scores
func (m *ServerModel) Predict(ctx context.Context, text string) (map[string]float64, error) {
	b, _ := json.Marshal(detectRequest{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url+"/detect", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("emotion server %s: %s", resp.Status, string(body))
	}

	var out detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("emotion server decode: %w", err)
	}

	if len(out.Emotions) == 0 {
		return nil, fmt.Errorf("emotion server returned no scores")
	}

	scores := make(map[string]float64, len(out.Emotions))
	for _, e := range out.Emotions {
		scores[e.Label] += e.Score
	}
	return scores, nil
}
