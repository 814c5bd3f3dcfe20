// ABOUTME: FLAC audio source
// ABOUTME: Decodes FLAC files frame by frame to int32 samples
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLACSource reads from a FLAC file
type FLACSource struct {
	file    *os.File
	stream  *flac.Stream
	format  audio.Format
	pending []int32 // interleaved samples of the current frame not yet returned
}

// NewFLACSource creates a new FLAC audio source
func NewFLACSource(filePath string) (*FLACSource, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}

	stream, err := flac.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	return &FLACSource{
		file:   f,
		stream: stream,
		format: audio.Format{
			Codec:      "flac",
			SampleRate: int(info.SampleRate),
			Channels:   int(info.NChannels),
			BitDepth:   int(info.BitsPerSample),
		},
	}, nil
}

func (s *FLACSource) Read(samples []int32) (int, error) {
	samplesRead := 0

	for samplesRead < len(samples) {
		if len(s.pending) == 0 {
			if err := s.nextFrame(); err != nil {
				if errors.Is(err, io.EOF) && samplesRead > 0 {
					return samplesRead, nil
				}
				return samplesRead, err
			}
		}

		n := copy(samples[samplesRead:], s.pending)
		s.pending = s.pending[n:]
		samplesRead += n
	}

	return samplesRead, nil
}

// nextFrame parses one frame and interleaves its subframes into pending
func (s *FLACSource) nextFrame() error {
	frame, err := s.stream.ParseNext()
	if err != nil {
		return err
	}

	channels := len(frame.Subframes)
	blockSize := int(frame.BlockSize)
	s.pending = make([]int32, 0, blockSize*channels)

	for i := 0; i < blockSize; i++ {
		for ch := 0; ch < channels; ch++ {
			sample := frame.Subframes[ch].Samples[i]
			s.pending = append(s.pending, audio.SampleFromDepth(sample, s.format.BitDepth))
		}
	}
	return nil
}

func (s *FLACSource) Format() audio.Format { return s.format }

func (s *FLACSource) Close() error {
	return s.file.Close()
}
