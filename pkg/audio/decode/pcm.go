// ABOUTME: PCM audio decoder
// ABOUTME: Decodes 16-bit and 24-bit little-endian PCM to int32 samples
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
)

// PCMDecoder decodes PCM audio
type PCMDecoder struct {
	bitDepth int
	pending  []byte // partial sample carried over from the previous chunk
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (*PCMDecoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM decoder: %s", format.Codec)
	}

	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	return &PCMDecoder{
		bitDepth: format.BitDepth,
	}, nil
}

// Decode converts PCM bytes to int32 samples. A trailing partial sample is
// kept and completed by the next call.
func (d *PCMDecoder) Decode(data []byte) ([]int32, error) {
	if len(d.pending) > 0 {
		data = append(d.pending, data...)
		d.pending = nil
	}

	width := d.bitDepth / 8
	numSamples := len(data) / width
	if rest := data[numSamples*width:]; len(rest) > 0 {
		d.pending = append([]byte(nil), rest...)
	}

	samples := make([]int32, numSamples)
	if d.bitDepth == 24 {
		// 24-bit PCM: 3 bytes per sample
		for i := 0; i < numSamples; i++ {
			b := [3]byte{data[i*3], data[i*3+1], data[i*3+2]}
			samples[i] = audio.SampleFrom24Bit(b)
		}
	} else {
		// 16-bit PCM: 2 bytes per sample (default)
		for i := 0; i < numSamples; i++ {
			sample16 := int16(binary.LittleEndian.Uint16(data[i*2:]))
			samples[i] = audio.SampleFromInt16(sample16)
		}
	}
	return samples, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	d.pending = nil
	return nil
}
