// ABOUTME: Encoder configuration surface
// ABOUTME: Couples the symbol bit width with a matching threshold set
package dpcm

import (
	"fmt"
	"strings"
)

// Config is everything the pipeline needs: how wide a packed symbol is and
// where the category boundaries sit. A width of w needs exactly 2^w-1
// thresholds so that every symbol value is reachable and fits.
type Config struct {
	BitWidth   int
	Thresholds Thresholds
}

// Validate rejects widths that do not divide a byte and threshold sets that
// are unordered or sized for a different width
func (c Config) Validate() error {
	if !ValidWidth(c.BitWidth) {
		return fmt.Errorf("%w: %d (must divide 8)", ErrInvalidBitWidth, c.BitWidth)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	if want := 1<<c.BitWidth - 1; len(c.Thresholds) != want {
		return &ThresholdError{
			Index:  -1,
			Reason: fmt.Sprintf("%d-bit symbols need %d thresholds, got %d", c.BitWidth, want, len(c.Thresholds)),
		}
	}
	return nil
}

// Mode selects one of the two supported output densities
type Mode int

const (
	OneBit Mode = iota + 1
	TwoBit
)

// ParseMode accepts "1bit", "2bit", "1" or "2"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1bit", "1", "1-bit":
		return OneBit, nil
	case "2bit", "2", "2-bit":
		return TwoBit, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (supported: 1bit, 2bit)", s)
	}
}

// Config returns the preset configuration for the mode. The thresholds are
// a fresh copy, so callers may modify them without touching the presets.
func (m Mode) Config() Config {
	switch m {
	case OneBit:
		return Config{BitWidth: 1, Thresholds: OneBitThresholds.Clone()}
	default:
		return Config{BitWidth: 2, Thresholds: TwoBitThresholds.Clone()}
	}
}

func (m Mode) String() string {
	switch m {
	case OneBit:
		return "1bit"
	case TwoBit:
		return "2bit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
