// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts decoded clips to the encoder's rate, channel count and depth
// Package resample provides sample rate conversion and format conformance.
//
// Uses linear interpolation for converting between sample rates and
// channel averaging for downmixing to mono. Conform chains both so any
// decoded clip can be brought to audio.TargetFormat without an external
// tool.
//
// Example:
//
//	mono8k := resample.Linear(mono44k, 44100, 8000)
//
//	buf, err = resample.Conform(buf, audio.TargetFormat)
package resample
