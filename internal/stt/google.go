package stt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleRecognizer implements STT using the Google Cloud Speech-to-Text REST API
type GoogleRecognizer struct {
	apiKey     string
	httpClient *http.Client
	useAPIKey  bool // true if using API key, false if using service account
}

// NewGoogleRecognizer creates a new Google STT recognizer.
// keyData can be an API key, a path to a JSON key file, or a JSON string
// containing service account credentials.
func NewGoogleRecognizer(keyData string) (*GoogleRecognizer, error) {
	keyDataTrimmed := strings.TrimSpace(keyData)

	// Check if it's an API key (typically 39 chars, starts with "AIzaSy")
	if len(keyDataTrimmed) == 39 && strings.HasPrefix(keyDataTrimmed, "AIzaSy") {
		log.Printf("[Google STT] Using API key authentication")
		return &GoogleRecognizer{
			apiKey:     keyDataTrimmed,
			httpClient: &http.Client{Timeout: 90 * time.Second},
			useAPIKey:  true,
		}, nil
	}

	var jsonData []byte
	if strings.HasPrefix(keyDataTrimmed, "{") {
		// It's a JSON string
		log.Printf("[Google STT] Using JSON credentials from environment variable")
		jsonData = []byte(keyDataTrimmed)
	} else {
		// It's a file path
		log.Printf("[Google STT] Reading key file: %s", keyDataTrimmed)
		var err error
		jsonData, err = os.ReadFile(keyDataTrimmed)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file '%s': %w", keyDataTrimmed, err)
		}
	}

	creds, err := google.CredentialsFromJSON(context.Background(), jsonData, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return nil, fmt.Errorf("failed to create credentials from JSON: %w", err)
	}

	return &GoogleRecognizer{
		httpClient: oauth2.NewClient(context.Background(), creds.TokenSource),
		useAPIKey:  false,
	}, nil
}

// Name returns the provider name
func (r *GoogleRecognizer) Name() string {
	return "google"
}

// googleSTTRequest represents a Google Speech-to-Text API request
type googleSTTRequest struct {
	Config googleSTTConfig `json:"config"`
	Audio  googleSTTAudio  `json:"audio"`
}

type googleSTTConfig struct {
	Encoding                   string `json:"encoding"`
	SampleRateHertz            int    `json:"sampleRateHertz"`
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation bool   `json:"enableAutomaticPunctuation"`
}

type googleSTTAudio struct {
	Content string `json:"content"` // Base64 encoded
}

// googleSTTResponse represents a Google Speech-to-Text API response
type googleSTTResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
	Error *googleSTTError `json:"error,omitempty"`
}

type googleSTTError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Recognize sends one WAV segment to the Google Speech-to-Text REST API
func (r *GoogleRecognizer) Recognize(ctx context.Context, wav []byte) (string, error) {
	reqBody := googleSTTRequest{
		Config: googleSTTConfig{
			Encoding:                   "LINEAR16",
			SampleRateHertz:            16000,
			LanguageCode:               "en-US",
			EnableAutomaticPunctuation: true,
		},
		Audio: googleSTTAudio{
			Content: base64.StdEncoding.EncodeToString(wav),
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := "https://speech.googleapis.com/v1/speech:recognize"
	if r.useAPIKey {
		apiURL += "?key=" + r.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Google Speech-to-Text: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Google STT] API error: Status %d, Body: %s", resp.StatusCode, truncate(string(body), 500))
		return "", fmt.Errorf("Google Speech-to-Text API returned status %d", resp.StatusCode)
	}

	var sttResp googleSTTResponse
	if err := json.Unmarshal(body, &sttResp); err != nil {
		return "", fmt.Errorf("failed to parse Google Speech-to-Text response: %w", err)
	}

	if sttResp.Error != nil {
		return "", fmt.Errorf("Google Speech-to-Text API error: %s", sttResp.Error.Message)
	}

	// No results means the segment had no recognizable speech, which is a
	// normal outcome for silence or noise.
	if len(sttResp.Results) == 0 || len(sttResp.Results[0].Alternatives) == 0 {
		return "", ErrNoSpeech
	}

	transcript := strings.TrimSpace(sttResp.Results[0].Alternatives[0].Transcript)
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}

// truncate shortens a string for logging
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
