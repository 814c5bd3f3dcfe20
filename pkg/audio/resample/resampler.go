// ABOUTME: Whole-clip linear interpolation resampler
// ABOUTME: Converts a mono clip from one sample rate to another in one pass
package resample

// OutputLen returns how many samples Linear produces for n input samples:
// one per output tick that starts inside the input, ceil(n*to/from)
func OutputLen(n, from, to int) int {
	if n <= 0 || from <= 0 || to <= 0 {
		return 0
	}
	return int((int64(n)*int64(to) + int64(from) - 1) / int64(from))
}

// Linear resamples mono samples from rate from to rate to. Output sample i
// sits at input position i*from/to and is interpolated between the two
// neighbouring inputs; past the last input the final sample is held.
// The input is not modified.
func Linear(samples []int32, from, to int) []int32 {
	n := OutputLen(len(samples), from, to)
	out := make([]int32, n)
	if n == 0 {
		return out
	}

	last := len(samples) - 1
	ratio := float64(from) / float64(to)

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		if idx >= last {
			out[i] = samples[last]
			continue
		}

		frac := pos - float64(idx)
		out[i] = int32(float64(samples[idx])*(1-frac) + float64(samples[idx+1])*frac)
	}
	return out
}
