// ABOUTME: End-to-end DPCM encoder
// ABOUTME: Runs normalize, delta, quantize and pack over one clip
package dpcm

import (
	"fmt"
	"log"
)

// Result is the outcome of encoding one clip
type Result struct {
	Packed  []byte
	Symbols int     // symbols produced by the quantizer
	Dropped int     // trailing symbols that did not fill a byte
	Peak    float64 // magnitude the clip was normalized by
}

// Encoder applies a validated Config to sample streams
type Encoder struct {
	config Config
}

// NewEncoder validates config up front so Encode can only fail on bad input.
// The encoder keeps its own copy of the thresholds.
func NewEncoder(config Config) (*Encoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Thresholds = config.Thresholds.Clone()
	return &Encoder{config: config}, nil
}

// Config returns a copy of the encoder's configuration
func (e *Encoder) Config() Config {
	c := e.config
	c.Thresholds = c.Thresholds.Clone()
	return c
}

// Encode converts samples into packed DPCM bytes. Either the whole clip is
// encoded or an error is returned and nothing is produced.
func (e *Encoder) Encode(samples []int32) (*Result, error) {
	normalized, err := Normalize(samples)
	if err != nil {
		return nil, err
	}

	deltas := Deltas(normalized)
	symbols := Quantize(deltas, e.config.Thresholds)

	packed, err := Pack(symbols, e.config.BitWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to pack symbols: %w", err)
	}

	res := &Result{
		Packed:  packed,
		Symbols: len(symbols),
		Dropped: Dropped(len(symbols), e.config.BitWidth),
		Peak:    Peak(samples),
	}
	if res.Dropped > 0 {
		log.Printf("dpcm: dropped %d trailing symbols that did not fill a byte (%d-bit symbols, %d per byte)",
			res.Dropped, e.config.BitWidth, SymbolsPerByte(e.config.BitWidth))
	}
	return res, nil
}

// Encode is a one-shot helper around NewEncoder and Encoder.Encode
func Encode(samples []int32, config Config) (*Result, error) {
	enc, err := NewEncoder(config)
	if err != nil {
		return nil, err
	}
	return enc.Encode(samples)
}
