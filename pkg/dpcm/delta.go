// ABOUTME: First-order difference stage
// ABOUTME: Computes x[i+1] - x[i] over the normalized stream
package dpcm

// Deltas returns the first-order difference of x, one element shorter than x
func Deltas(x []float64) []float64 {
	if len(x) < 2 {
		return []float64{}
	}

	deltas := make([]float64, len(x)-1)
	for i := range deltas {
		deltas[i] = x[i+1] - x[i]
	}
	return deltas
}
