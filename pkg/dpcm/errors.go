// ABOUTME: Error values returned by the DPCM pipeline
// ABOUTME: Sentinel errors plus a typed threshold validation error
package dpcm

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no samples to encode
	ErrEmptyInput = errors.New("dpcm: empty sample stream")

	// ErrDegenerateInput is returned when every sample is zero, so there is no peak to normalize by
	ErrDegenerateInput = errors.New("dpcm: degenerate input (peak magnitude is zero)")

	// ErrMisconfiguredThresholds is returned for threshold sets that are not strictly
	// ascending or whose size does not match the bit width
	ErrMisconfiguredThresholds = errors.New("dpcm: misconfigured thresholds")

	// ErrInvalidBitWidth is returned for widths that do not divide a byte
	ErrInvalidBitWidth = errors.New("dpcm: invalid bit width")

	// ErrSymbolOverflow is returned when a symbol does not fit in the packing width
	ErrSymbolOverflow = errors.New("dpcm: symbol does not fit bit width")
)

// ThresholdError describes why a threshold set was rejected
type ThresholdError struct {
	Index  int // offending position, -1 when the whole set is at fault
	Reason string
}

func (e *ThresholdError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrMisconfiguredThresholds, e.Reason)
	}
	return fmt.Sprintf("%v: threshold %d: %s", ErrMisconfiguredThresholds, e.Index, e.Reason)
}

func (e *ThresholdError) Unwrap() error {
	return ErrMisconfiguredThresholds
}
