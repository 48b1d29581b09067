package pipeline

import (
	"context"
	"errors"
	"log"

	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/audio"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/stt"
)

// TranscriptStatus records the outcome of transcribing one segment.
type TranscriptStatus string

const (
	StatusOK             TranscriptStatus = "ok"
	StatusUnintelligible TranscriptStatus = "unintelligible"
	StatusServiceError   TranscriptStatus = "service_error"
)

// TranscriptResult is the per-segment transcription outcome. A failed
// segment is data, not an error: it carries an empty Text and a non-OK
// status so the rest of the run proceeds.
type TranscriptResult struct {
	SegmentIndex int
	Text         string
	Status       TranscriptStatus
}

// transcribe runs one segment through the recognizer. One noisy or silent
// window must not void the whole recording's analysis, so every failure is
// captured as a status value.
func (p *Pipeline) transcribe(ctx context.Context, seg audio.Segment, sampleRate int) TranscriptResult {
	wav := audio.EncodeWAV(seg.Samples, sampleRate)

	text, err := p.recognizer.Recognize(ctx, wav)
	switch {
	case err == nil:
		return TranscriptResult{SegmentIndex: seg.Index, Text: text, Status: StatusOK}
	case errors.Is(err, stt.ErrNoSpeech):
		log.Printf("[Pipeline] Segment %d: no speech recognized", seg.Index)
		return TranscriptResult{SegmentIndex: seg.Index, Status: StatusUnintelligible}
	default:
		log.Printf("[Pipeline] Segment %d: transcription failed (provider: %s): %v",
			seg.Index, p.recognizer.Name(), err)
		return TranscriptResult{SegmentIndex: seg.Index, Status: StatusServiceError}
	}
}
