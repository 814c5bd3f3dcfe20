// ABOUTME: WAV audio source
// ABOUTME: Decodes RIFF/WAVE PCM files to int32 samples
package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
	"github.com/go-audio/wav"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag
const wavFormatPCM = 1

// WAVSource reads from a WAV file
type WAVSource struct {
	format  audio.Format
	samples []int32
	pos     int
}

// NewWAVSource decodes the PCM data of a WAV file
func NewWAVSource(filePath string) (*WAVSource, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	return decodeWAV(f)
}

func decodeWAV(r io.ReadSeeker) (*WAVSource, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("failed to decode WAV: not a valid wave file")
	}
	if d.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("unsupported WAV encoding: format tag %d (supported: PCM)", d.WavAudioFormat)
	}

	bitDepth := int(d.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 8, 16, 24, 32)", bitDepth)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV samples: %w", err)
	}

	samples := make([]int32, len(pcm.Data))
	for i, v := range pcm.Data {
		if bitDepth == 8 {
			// 8-bit WAV is unsigned
			v -= 128
		}
		samples[i] = audio.SampleFromDepth(int32(v), bitDepth)
	}

	return &WAVSource{
		format: audio.Format{
			Codec:      "pcm",
			SampleRate: int(d.SampleRate),
			Channels:   int(d.NumChans),
			BitDepth:   bitDepth,
		},
		samples: samples,
	}, nil
}

func (s *WAVSource) Read(samples []int32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

func (s *WAVSource) Format() audio.Format { return s.format }
func (s *WAVSource) Close() error         { return nil }
