package audio

import (
	"encoding/binary"
	"fmt"
)

const wavHeaderSize = 44

// EncodeWAV wraps mono PCM16 samples in a minimal WAV header, suitable for
// handing a single segment to a speech-to-text service.
func EncodeWAV(samples []int16, sampleRate int) []byte {
	const bitsPerSample = 16
	const channels = 1
	byteRate := sampleRate * channels * (bitsPerSample / 8)
	blockAlign := channels * (bitsPerSample / 8)
	dataSize := len(samples) * 2

	out := make([]byte, wavHeaderSize+dataSize)
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], channels)
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[wavHeaderSize+i*2:], uint16(s))
	}
	return out
}

// DecodeWAV parses a PCM16 WAV byte stream into a Buffer. Multi-channel
// audio is downmixed to mono by averaging the channels.
func DecodeWAV(data []byte) (Buffer, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Buffer{}, &DecodeError{Reason: "not a RIFF/WAVE stream"}
	}

	var (
		sampleRate int
		channels   int
		haveFmt    bool
		pcm        []byte
	)

	// Walk the chunk list; converters commonly emit LIST/INFO chunks
	// between fmt and data.
	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if size < 0 || body+size > len(data) {
			// Tolerate a data chunk whose declared size overruns the
			// stream (ffmpeg writes a placeholder when piping).
			if id == "data" {
				size = len(data) - body
			} else {
				return Buffer{}, &DecodeError{Reason: fmt.Sprintf("malformed %q chunk", id)}
			}
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return Buffer{}, &DecodeError{Reason: "fmt chunk too short"}
			}
			format := binary.LittleEndian.Uint16(data[body : body+2])
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bits := binary.LittleEndian.Uint16(data[body+14 : body+16])
			if format != 1 || bits != 16 {
				return Buffer{}, &DecodeError{Reason: fmt.Sprintf("unsupported encoding: format=%d bits=%d (want PCM16)", format, bits)}
			}
			if channels < 1 || sampleRate <= 0 {
				return Buffer{}, &DecodeError{Reason: "invalid fmt chunk"}
			}
			haveFmt = true
		case "data":
			pcm = data[body : body+size]
		}

		// Chunks are word-aligned.
		off = body + size
		if size%2 == 1 {
			off++
		}
	}

	if !haveFmt {
		return Buffer{}, &DecodeError{Reason: "missing fmt chunk"}
	}
	if pcm == nil {
		return Buffer{}, &DecodeError{Reason: "missing data chunk"}
	}

	frameSize := channels * 2
	frames := len(pcm) / frameSize
	samples := make([]int16, frames)
	for i := 0; i < frames; i++ {
		var sum int
		for c := 0; c < channels; c++ {
			sum += int(int16(binary.LittleEndian.Uint16(pcm[i*frameSize+c*2:])))
		}
		samples[i] = int16(sum / channels)
	}

	return Buffer{Samples: samples, SampleRate: sampleRate}, nil
}
