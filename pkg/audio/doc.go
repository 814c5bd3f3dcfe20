// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides the audio types shared by the decoders, the
// resampler and the DPCM encoder.
//
//   - Format: describes a stream (codec, sample rate, channels, bit depth)
//   - Buffer: a whole decoded clip, interleaved, in the 24-bit range
//   - TargetFormat: 8 kHz mono 16-bit, the input the DPCM encoder expects
//
// Example:
//
//	if !buf.Format.Matches(audio.TargetFormat) {
//	    buf, err = resample.Conform(buf, audio.TargetFormat)
//	}
//
//	// Convert 16-bit sample to 24-bit range
//	sample24 := audio.SampleFromInt16(sample16)
package audio
