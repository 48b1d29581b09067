package audio

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// DecodeError indicates the uploaded bytes could not be decoded as audio.
// It is the only failure that aborts a whole analysis run.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode audio: %s: %v", e.Reason, e.Err)
	}
	return "failed to decode audio: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeSampleRate is what every recording is resampled to before
// segmentation. 16kHz mono is what speech models expect.
const decodeSampleRate = 16000

// Decode converts an uploaded audio file (wav, mp3, ogg, flac, m4a, ...)
// into a mono PCM16 buffer. Container and codec conversion is delegated to
// ffmpeg; anything ffmpeg cannot parse is a DecodeError.
func Decode(ctx context.Context, ffmpegPath, path string) (Buffer, error) {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}

	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "error",
		"-i", path,
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", decodeSampleRate),
		"-acodec", "pcm_s16le",
		"-f", "wav",
		"pipe:1",
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = "ffmpeg failed"
		}
		log.Printf("[Audio] ffmpeg decode failed for %s: %s", path, reason)
		return Buffer{}, &DecodeError{Reason: reason, Err: err}
	}

	buf, err := DecodeWAV(stdout.Bytes())
	if err != nil {
		return Buffer{}, err
	}

	log.Printf("[Audio] Decoded %s: %d samples @ %dHz (%.1fs)",
		path, len(buf.Samples), buf.SampleRate, buf.Duration().Seconds())
	return buf, nil
}
