// ABOUTME: Test tone generator source
// ABOUTME: Generates a finite sine wave for encoding without an input file
package decode

import (
	"io"
	"math"
	"time"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
)

// ToneSource generates a mono 16-bit sine wave of fixed length
type ToneSource struct {
	frequency   float64
	sampleRate  int
	total       int
	sampleIndex int
}

// NewToneSource creates a sine generator at freq Hz lasting duration
func NewToneSource(freq float64, sampleRate int, duration time.Duration) *ToneSource {
	return &ToneSource{
		frequency:  freq,
		sampleRate: sampleRate,
		total:      int(duration.Seconds() * float64(sampleRate)),
	}
}

func (s *ToneSource) Read(samples []int32) (int, error) {
	remaining := s.total - s.sampleIndex
	if remaining <= 0 {
		return 0, io.EOF
	}
	numSamples := min(len(samples), remaining)

	for i := 0; i < numSamples; i++ {
		t := float64(s.sampleIndex+i) / float64(s.sampleRate)
		sample := math.Sin(2 * math.Pi * s.frequency * t)

		// Convert to 16-bit PCM at 50% volume
		samples[i] = audio.SampleFromInt16(int16(sample * 32767.0 * 0.5))
	}

	s.sampleIndex += numSamples
	return numSamples, nil
}

func (s *ToneSource) Format() audio.Format {
	return audio.Format{
		Codec:      "pcm",
		SampleRate: s.sampleRate,
		Channels:   1,
		BitDepth:   16,
	}
}

func (s *ToneSource) Close() error { return nil }
