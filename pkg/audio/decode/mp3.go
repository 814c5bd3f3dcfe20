// ABOUTME: MP3 audio source
// ABOUTME: Decodes MP3 files to int32 samples
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// MP3Source reads from an MP3 file
type MP3Source struct {
	file       *os.File
	decoder    *mp3.Decoder
	sampleRate int
	buf        []byte
}

// NewMP3Source creates a new MP3 audio source
func NewMP3Source(filePath string) (*MP3Source, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}

	return &MP3Source{
		file:       f,
		decoder:    decoder,
		sampleRate: decoder.SampleRate(),
	}, nil
}

func (s *MP3Source) Read(samples []int32) (int, error) {
	// MP3 decoder outputs int16 = 2 bytes per sample
	numBytes := len(samples) * 2
	if cap(s.buf) < numBytes {
		s.buf = make([]byte, numBytes)
	}
	buf := s.buf[:numBytes]

	n, err := io.ReadFull(s.decoder, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("mp3 decode error: %w", err)
	}

	// Convert bytes to int16, then scale to 24-bit range
	numSamples := n / 2
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(buf[i*2 : i*2+2]))
		samples[i] = audio.SampleFromInt16(sample16)
	}

	if numSamples == 0 && err != nil {
		return 0, io.EOF
	}
	return numSamples, nil
}

func (s *MP3Source) Format() audio.Format {
	return audio.Format{
		Codec:      "mp3",
		SampleRate: s.sampleRate,
		Channels:   2, // MP3 decoder outputs stereo
		BitDepth:   16,
	}
}

func (s *MP3Source) Close() error {
	return s.file.Close()
}
