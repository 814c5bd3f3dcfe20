// ABOUTME: Sample source selection and draining
// ABOUTME: Opens audio files by extension and reads them into one buffer
package decode

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
)

// readChunk is the number of samples ReadAll requests per call
const readChunk = 4096

// Options tunes how files are opened
type Options struct {
	// OpusChannels is the channel count to decode Ogg Opus files with.
	// Opus streams do not report it through the decoder, so it must be known.
	OpusChannels int
}

// Open creates a source for the audio file at path, chosen by extension
func Open(path string, opts Options) (Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var (
		src Source
		err error
	)
	switch ext {
	case ".wav", ".wave":
		src, err = NewWAVSource(path)
	case ".mp3":
		src, err = NewMP3Source(path)
	case ".flac":
		src, err = NewFLACSource(path)
	case ".opus", ".ogg":
		channels := opts.OpusChannels
		if channels == 0 {
			channels = 1
		}
		src, err = NewOpusSource(path, channels)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .flac, .opus)", ext)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %s: %s", filepath.Base(path), src.Format())
	return src, nil
}

// ReadAll drains src into a single buffer
func ReadAll(src Source) (*audio.Buffer, error) {
	buf := &audio.Buffer{Format: src.Format()}
	chunk := make([]int32, readChunk)

	for {
		n, err := src.Read(chunk)
		buf.Samples = append(buf.Samples, chunk[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read samples: %w", err)
		}
	}

	if len(buf.Samples) == 0 {
		return nil, errors.New("empty audio: no samples decoded")
	}
	return buf, nil
}
