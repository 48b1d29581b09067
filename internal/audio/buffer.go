package audio

import "time"

// Buffer holds one fully decoded recording as mono PCM16 samples.
// It is immutable once decoded and owned by a single pipeline run.
type Buffer struct {
	Samples    []int16
	SampleRate int
}

// Duration returns the total length of the recording.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.SampleRate)
}
