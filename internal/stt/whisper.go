package stt

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// WhisperRecognizer implements STT using the OpenAI Whisper API
type WhisperRecognizer struct {
	client *openai.Client
}

// NewWhisperRecognizer creates a new Whisper recognizer
func NewWhisperRecognizer(apiKey string) *WhisperRecognizer {
	return &WhisperRecognizer{
		client: openai.NewClient(apiKey),
	}
}

// Name returns the provider name
func (r *WhisperRecognizer) Name() string {
	return "whisper"
}

// Recognize sends one WAV segment to the Whisper API
func (r *WhisperRecognizer) Recognize(ctx context.Context, wav []byte) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "segment.wav",
		Reader:   bytes.NewReader(wav),
		Language: "en",
	}

	resp, err := r.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("Whisper API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}
