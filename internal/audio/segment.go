package audio

import "time"

// Segment is one fixed-duration window of a recording, the unit of
// transcription and classification.
type Segment struct {
	Index   int
	Start   time.Duration
	End     time.Duration
	Samples []int16
}

// Split partitions a decoded buffer into consecutive windows of the given
// length. Windows are contiguous, non-overlapping, and cover the whole
// recording; the final one may be shorter. An empty buffer yields no
// segments. Samples are sliced from the buffer, not copied.
func Split(buf Buffer, window time.Duration) []Segment {
	if window <= 0 || len(buf.Samples) == 0 || buf.SampleRate <= 0 {
		return nil
	}

	perWindow := int(int64(window) * int64(buf.SampleRate) / int64(time.Second))
	if perWindow <= 0 {
		return nil
	}

	total := buf.Duration()
	n := (len(buf.Samples) + perWindow - 1) / perWindow
	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		lo := i * perWindow
		hi := lo + perWindow
		if hi > len(buf.Samples) {
			hi = len(buf.Samples)
		}

		end := time.Duration(i+1) * window
		if end > total {
			end = total
		}

		segments = append(segments, Segment{
			Index:   i,
			Start:   time.Duration(i) * window,
			End:     end,
			Samples: buf.Samples[lo:hi],
		})
	}
	return segments
}
