package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ErrUnsupportedFormat is returned for sample files that are neither WAV nor MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Buffer is a decoded mono sample at its native rate.
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// Decode decodes WAV or MP3 data, chosen by ext (".wav", ".mp3"), down-mixing to mono.
func Decode(data []byte, ext string) (*Buffer, error) {
	switch ext {
	case ".wav", ".wave":
		return decodeWAV(data)
	case ".mp3":
		return decodeMP3(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decodeWAV(data []byte) (*Buffer, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return nil, fmt.Errorf("decode wav: invalid file")
	}
	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if pcm.Format == nil || pcm.Format.NumChannels <= 0 || pcm.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("decode wav: missing format")
	}

	channels := pcm.Format.NumChannels
	depth := int(d.BitDepth)
	if depth <= 0 {
		depth = 16
	}
	scale := float64(int64(1) << (depth - 1))
	offset := 0.0
	if depth == 8 {
		// 8-bit PCM is unsigned.
		offset = scale
	}

	frames := len(pcm.Data) / channels
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += (float64(pcm.Data[i*channels+c]) - offset) / scale
		}
		out[i] = float32(sum / float64(channels))
	}
	return &Buffer{Samples: out, SampleRate: pcm.Format.SampleRate}, nil
}

// go-mp3 always yields 16-bit little-endian stereo.
func decodeMP3(data []byte) (*Buffer, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	frames := len(raw) / 4
	if frames == 0 {
		return nil, fmt.Errorf("decode mp3: no audio frames")
	}
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		l := int16(uint16(raw[i*4]) | uint16(raw[i*4+1])<<8)
		r := int16(uint16(raw[i*4+2]) | uint16(raw[i*4+3])<<8)
		out[i] = float32((float64(l) + float64(r)) / (2 * 32768))
	}
	return &Buffer{Samples: out, SampleRate: d.SampleRate()}, nil
}
