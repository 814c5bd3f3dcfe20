// ABOUTME: PCM audio encoder
// ABOUTME: Encodes int32 samples to 16-bit or 24-bit little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
)

// PCMEncoder encodes raw little-endian PCM, the framing sox reads as
// "-t raw -e signed-integer -L"
type PCMEncoder struct {
	bitDepth int
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (*PCMEncoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}

	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	return &PCMEncoder{
		bitDepth: format.BitDepth,
	}, nil
}

// BytesPerSample returns the encoded width of one sample
func (e *PCMEncoder) BytesPerSample() int {
	return e.bitDepth / 8
}

// Encode converts int32 samples to PCM bytes
func (e *PCMEncoder) Encode(samples []int32) ([]byte, error) {
	return e.Append(make([]byte, 0, len(samples)*e.BytesPerSample()), samples), nil
}

// Append encodes samples onto the end of dst
func (e *PCMEncoder) Append(dst []byte, samples []int32) []byte {
	for _, sample := range samples {
		if e.bitDepth == 24 {
			b := audio.SampleTo24Bit(sample)
			dst = append(dst, b[0], b[1], b[2])
		} else {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(audio.SampleToInt16(sample)))
		}
	}
	return dst
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
