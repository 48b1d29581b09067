package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	const rate = 16000

	buffer := func(seconds float64) Buffer {
		return Buffer{
			Samples:    make([]int16, int(seconds*rate)),
			SampleRate: rate,
		}
	}

	t.Run("25s recording with 10s window", func(t *testing.T) {
		segments := Split(buffer(25), 10*time.Second)
		require.Len(t, segments, 3)

		require.Equal(t, 0, segments[0].Index)
		require.Equal(t, time.Duration(0), segments[0].Start)
		require.Equal(t, 10*time.Second, segments[0].End)

		require.Equal(t, 1, segments[1].Index)
		require.Equal(t, 10*time.Second, segments[1].Start)
		require.Equal(t, 20*time.Second, segments[1].End)

		require.Equal(t, 2, segments[2].Index)
		require.Equal(t, 20*time.Second, segments[2].Start)
		require.Equal(t, 25*time.Second, segments[2].End)
	})

	t.Run("exact multiple of the window", func(t *testing.T) {
		segments := Split(buffer(20), 10*time.Second)
		require.Len(t, segments, 2)
		require.Equal(t, 20*time.Second, segments[1].End)
	})

	t.Run("window longer than recording", func(t *testing.T) {
		segments := Split(buffer(3), 10*time.Second)
		require.Len(t, segments, 1)
		require.Equal(t, time.Duration(0), segments[0].Start)
		require.Equal(t, 3*time.Second, segments[0].End)
	})

	t.Run("empty buffer", func(t *testing.T) {
		segments := Split(Buffer{SampleRate: rate}, 10*time.Second)
		require.Empty(t, segments)
	})

	t.Run("invalid window", func(t *testing.T) {
		segments := Split(buffer(10), 0)
		require.Empty(t, segments)
	})

	t.Run("segments are contiguous and cover the buffer", func(t *testing.T) {
		buf := buffer(37.5)
		segments := Split(buf, 7*time.Second)

		var totalSamples int
		for i, seg := range segments {
			require.Equal(t, i, seg.Index)
			if i > 0 {
				require.Equal(t, segments[i-1].End, seg.Start)
			}
			require.Greater(t, seg.End, seg.Start)
			totalSamples += len(seg.Samples)
		}
		require.Equal(t, time.Duration(0), segments[0].Start)
		require.Equal(t, buf.Duration(), segments[len(segments)-1].End)
		require.Equal(t, len(buf.Samples), totalSamples)
	})
}
