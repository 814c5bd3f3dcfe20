// ABOUTME: WAV file writer
// ABOUTME: Saves a buffer as a PCM RIFF/WAVE file using go-audio/wav
package encode

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
)

// WriteWAV writes buf to path as 16-bit or 24-bit PCM
func WriteWAV(path string, buf audio.Buffer) error {
	depth := buf.Format.BitDepth
	if depth != 16 && depth != 24 {
		return fmt.Errorf("unsupported WAV bit depth: %d (supported: 16, 24)", depth)
	}
	if buf.Format.Channels < 1 || buf.Format.SampleRate < 1 {
		return fmt.Errorf("invalid WAV format: %s", buf.Format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer f.Close()

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		if depth == 16 {
			data[i] = int(audio.SampleToInt16(s))
		} else {
			data[i] = int(s)
		}
	}

	enc := wav.NewEncoder(f, buf.Format.SampleRate, depth, buf.Format.Channels, 1)
	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: buf.Format.Channels, SampleRate: buf.Format.SampleRate},
		Data:           data,
		SourceBitDepth: depth,
	}
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return f.Close()
}
