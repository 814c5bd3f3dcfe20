// ABOUTME: Peak normalization stage
// ABOUTME: Rescales signed samples into [-1, 1] by the clip's own peak
package dpcm

// Peak returns the largest absolute sample value as a float64
func Peak(samples []int32) float64 {
	var hi, lo int64
	for _, s := range samples {
		v := int64(s)
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	// int64 so that -MinInt32 does not overflow
	if -lo > hi {
		return float64(-lo)
	}
	return float64(hi)
}

// Normalize divides every sample by the stream's peak magnitude. The result
// has the same length as samples and at least one element of magnitude 1.
func Normalize(samples []int32) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	scale := Peak(samples)
	if scale == 0 {
		return nil, ErrDegenerateInput
	}

	normalized := make([]float64, len(samples))
	for i, s := range samples {
		normalized[i] = float64(s) / scale
	}
	return normalized, nil
}
