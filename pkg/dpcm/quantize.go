// ABOUTME: Threshold quantizer stage
// ABOUTME: Maps each delta to the index of the first threshold it does not exceed
package dpcm

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Thresholds is a strictly ascending set of decision boundaries. k
// thresholds split the real line into k+1 categories:
// (-inf, t0], (t0, t1], ..., (t[k-1], +inf).
type Thresholds []float64

var (
	// OneBitThresholds splits deltas into falling (0) and rising (1)
	OneBitThresholds = Thresholds{0}

	// TwoBitThresholds gives strong/weak falling (0, 1) and weak/strong rising (2, 3)
	TwoBitThresholds = Thresholds{-0.05, 0, 0.05}
)

// NewThresholds copies values into a validated threshold set
func NewThresholds(values ...float64) (Thresholds, error) {
	t := make(Thresholds, len(values))
	copy(t, values)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseThresholds parses a comma-separated list such as "-0.05,0,0.05"
func ParseThresholds(s string) (Thresholds, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, &ThresholdError{Index: i, Reason: "empty value"}
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &ThresholdError{Index: i, Reason: fmt.Sprintf("not a number: %q", field)}
		}
		values = append(values, v)
	}
	return NewThresholds(values...)
}

// MaxThresholds bounds a set so every symbol fits in a byte
const MaxThresholds = 255

// Validate checks that the set is non-empty, no larger than MaxThresholds,
// finite and strictly ascending
func (t Thresholds) Validate() error {
	if len(t) == 0 {
		return &ThresholdError{Index: -1, Reason: "no thresholds"}
	}
	if len(t) > MaxThresholds {
		return &ThresholdError{Index: -1, Reason: fmt.Sprintf("%d thresholds exceed the maximum of %d", len(t), MaxThresholds)}
	}
	for i, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ThresholdError{Index: i, Reason: "not finite"}
		}
		if i > 0 && v <= t[i-1] {
			return &ThresholdError{Index: i, Reason: fmt.Sprintf("%g is not greater than %g", v, t[i-1])}
		}
	}
	return nil
}

// Clone returns an independent copy of t
func (t Thresholds) Clone() Thresholds {
	if t == nil {
		return nil
	}
	return append(Thresholds(nil), t...)
}

// Symbols returns the alphabet size, len(t)+1
func (t Thresholds) Symbols() int {
	return len(t) + 1
}

// Classify returns the index of the first threshold d does not exceed, or
// len(t) when d is above all of them. Ties fall into the lower category.
func (t Thresholds) Classify(d float64) uint8 {
	// first i with t[i] >= d, same answer as an ascending linear scan
	return uint8(sort.SearchFloat64s(t, d))
}

func (t Thresholds) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Quantize classifies every delta against t. t must already be validated.
func Quantize(deltas []float64, t Thresholds) []uint8 {
	symbols := make([]uint8, len(deltas))
	for i, d := range deltas {
		symbols[i] = t.Classify(d)
	}
	return symbols
}
