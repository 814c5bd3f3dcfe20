// ABOUTME: External resampling through the sox command-line tool
// ABOUTME: Pipes raw PCM into sox and decodes the conformed stream it writes back
package sox

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
	"github.com/flashvoice/wave2dpcm/pkg/audio/decode"
	"github.com/flashvoice/wave2dpcm/pkg/audio/encode"
)

// DefaultBinary is looked up in PATH when no binary is configured
const DefaultBinary = "sox"

// Available reports whether binary can be executed
func Available(binary string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s not found in PATH: %w (install with: brew install sox)", binary, err)
	}
	return nil
}

// Converter resamples buffers by running sox as a child process
type Converter struct {
	Binary string
}

// Args builds the sox command line that converts raw PCM in format from to
// raw PCM in format to, reading stdin and writing stdout
func Args(from, to audio.Format) []string {
	return append(rawArgs(from, "-"), rawArgs(to, "-")...)
}

func rawArgs(f audio.Format, file string) []string {
	return []string{
		"-t", "raw",
		"-e", "signed-integer",
		"-b", strconv.Itoa(f.BitDepth),
		"-L",
		"-r", strconv.Itoa(f.SampleRate),
		"-c", strconv.Itoa(f.Channels),
		file,
	}
}

// Convert runs buf through sox and returns the result in target format.
// The child process is killed if ctx is cancelled.
func (c Converter) Convert(ctx context.Context, buf *audio.Buffer, target audio.Format) (*audio.Buffer, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	// sox is fed 16 or 24-bit PCM; wider and narrower inputs were already
	// widened to the 24-bit sample range by the decoder
	from := buf.Format
	from.Codec = "pcm"
	if from.BitDepth != 16 {
		from.BitDepth = 24
	}
	to := target
	to.Codec = "pcm"

	enc, err := encode.NewPCM(from)
	if err != nil {
		return nil, fmt.Errorf("failed to create sox input encoder: %w", err)
	}
	defer enc.Close()
	input, err := enc.Encode(buf.Samples)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sox input: %w", err)
	}

	dec, err := decode.NewPCM(to)
	if err != nil {
		return nil, fmt.Errorf("failed to create sox output decoder: %w", err)
	}
	defer dec.Close()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, Args(from, to)...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("sox failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("sox failed: %w", err)
	}

	samples, err := dec.Decode(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to decode sox output: %w", err)
	}

	log.Printf("Conformed via %s: %s -> %s (%d -> %d samples)", binary, buf.Format, to, len(buf.Samples), len(samples))

	return &audio.Buffer{Samples: samples, Format: to}, nil
}
