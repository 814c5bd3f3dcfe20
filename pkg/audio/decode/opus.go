// ABOUTME: Ogg Opus audio source
// ABOUTME: Decodes .opus files to int32 samples via libopusfile
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
	"gopkg.in/hraban/opus.v2"
)

// opusSampleRate is the rate libopusfile always decodes at
const opusSampleRate = 48000

// OpusSource reads from an Ogg Opus file
type OpusSource struct {
	file     *os.File
	stream   *opus.Stream
	channels int
	pcm16    []int16
}

// NewOpusSource creates a new Opus audio source decoding channels channels
func NewOpusSource(filePath string, channels int) (*OpusSource, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("unsupported opus channel count: %d (supported: 1, 2)", channels)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Opus file: %w", err)
	}

	stream, err := opus.NewStream(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create opus stream: %w", err)
	}

	return &OpusSource{
		file:     f,
		stream:   stream,
		channels: channels,
	}, nil
}

func (s *OpusSource) Read(samples []int32) (int, error) {
	// whole frames only
	size := len(samples) - len(samples)%s.channels
	if size == 0 {
		return 0, nil
	}
	if cap(s.pcm16) < size {
		s.pcm16 = make([]int16, size)
	}
	pcm16 := s.pcm16[:size]

	n, err := s.stream.Read(pcm16)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("opus decode failed: %w", err)
	}

	// n is per channel
	actualSamples := n * s.channels
	for i := 0; i < actualSamples; i++ {
		samples[i] = audio.SampleFromInt16(pcm16[i])
	}
	return actualSamples, nil
}

func (s *OpusSource) Format() audio.Format {
	return audio.Format{
		Codec:      "opus",
		SampleRate: opusSampleRate,
		Channels:   s.channels,
		BitDepth:   16, // Opus is always decoded to 16-bit here
	}
}

func (s *OpusSource) Close() error {
	err := s.stream.Close()
	if cerr := s.file.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) && err == nil {
		err = cerr
	}
	return err
}
