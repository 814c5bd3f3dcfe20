// ABOUTME: Audio encoder package for DPCM, raw PCM and WAV output
// ABOUTME: Provides Encoder interface and implementations for DPCM and PCM
// Package encode provides the encoders that consume decoded clips.
//
// Supports: DPCM (1-bit and 2-bit symbols), PCM (16-bit and 24-bit), WAV files
//
// All encoders accept int32 samples in 24-bit range. The DPCM encoder is
// the product of this module; PCM feeds external tools and WriteWAV keeps
// a copy of a conformed clip on disk.
//
// Example:
//
//	encoder, err := encode.NewDPCM(buf.Format, dpcm.TwoBit.Config())
//	data, err := encoder.Encode(buf.Samples)
package encode
