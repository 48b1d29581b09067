package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeWAV(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		samples := []int16{0, 100, -100, 32767, -32768, 7}
		data := EncodeWAV(samples, 16000)

		buf, err := DecodeWAV(data)
		require.NoError(t, err)
		require.Equal(t, 16000, buf.SampleRate)
		require.Equal(t, samples, buf.Samples)
	})

	t.Run("not a wav stream", func(t *testing.T) {
		_, err := DecodeWAV([]byte("definitely not audio"))
		require.Error(t, err)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := DecodeWAV([]byte("RIFF"))
		require.Error(t, err)
	})

	t.Run("stereo is downmixed to mono", func(t *testing.T) {
		// Hand-build a 2-channel PCM16 stream with one frame of (100, 300).
		pcm := make([]byte, 4)
		binary.LittleEndian.PutUint16(pcm[0:], uint16(int16(100)))
		binary.LittleEndian.PutUint16(pcm[2:], uint16(int16(300)))
		data := stereoWAV(t, pcm, 8000)

		buf, err := DecodeWAV(data)
		require.NoError(t, err)
		require.Equal(t, []int16{200}, buf.Samples)
		require.Equal(t, 8000, buf.SampleRate)
	})
}

// stereoWAV wraps raw interleaved 2-channel PCM16 bytes in a WAV header.
func stereoWAV(t *testing.T, pcm []byte, sampleRate int) []byte {
	t.Helper()

	out := make([]byte, 44+len(pcm))
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(pcm)))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1)
	binary.LittleEndian.PutUint16(out[22:24], 2)
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*4))
	binary.LittleEndian.PutUint16(out[32:34], 4)
	binary.LittleEndian.PutUint16(out[34:36], 16)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(pcm)))
	copy(out[44:], pcm)
	return out
}
