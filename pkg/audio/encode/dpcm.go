// ABOUTME: DPCM encoder adapter
// ABOUTME: Wraps the dpcm pipeline behind the Encoder interface for conformed clips
package encode

import (
	"fmt"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
	"github.com/flashvoice/wave2dpcm/pkg/dpcm"
)

// DPCMEncoder packs a whole mono clip into DPCM bytes
type DPCMEncoder struct {
	enc    *dpcm.Encoder
	format audio.Format
	last   *dpcm.Result
}

// NewDPCM creates a DPCM encoder for clips in the given format
func NewDPCM(format audio.Format, cfg dpcm.Config) (*DPCMEncoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for DPCM encoder: %s", format.Codec)
	}
	if format.Channels != 1 {
		return nil, fmt.Errorf("DPCM encoder requires mono input, got %d channels", format.Channels)
	}

	enc, err := dpcm.NewEncoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid DPCM configuration: %w", err)
	}

	return &DPCMEncoder{
		enc:    enc,
		format: format,
	}, nil
}

// Encode treats samples as one complete clip. Calling it twice encodes two
// independent clips; no state carries across calls.
func (e *DPCMEncoder) Encode(samples []int32) ([]byte, error) {
	res, err := e.enc.Encode(samples)
	if err != nil {
		return nil, err
	}
	e.last = res
	return res.Packed, nil
}

// LastResult returns the details of the most recent successful Encode, or nil
func (e *DPCMEncoder) LastResult() *dpcm.Result {
	return e.last
}

// Format returns the input format the encoder was built for
func (e *DPCMEncoder) Format() audio.Format {
	return e.format
}

// Close releases resources
func (e *DPCMEncoder) Close() error {
	return nil
}
