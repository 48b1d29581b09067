package stt

import (
	"context"
	"errors"
)

// ErrNoSpeech is returned when the service processed the audio fine but
// found nothing intelligible in it. Callers treat it differently from a
// service failure.
var ErrNoSpeech = errors.New("no speech recognized")

// Recognizer defines the interface for speech-to-text providers
type Recognizer interface {
	// Recognize transcribes one WAV-encoded audio segment and returns the
	// text. Returns ErrNoSpeech when the segment contains no recognizable
	// speech; any other error is a service failure.
	Recognize(ctx context.Context, wav []byte) (string, error)

	// Name returns the name of the provider (e.g., "whisper", "google")
	Name() string
}
