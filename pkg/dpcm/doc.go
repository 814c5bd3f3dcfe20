// ABOUTME: DPCM encoding pipeline for ROM-resident audio
// ABOUTME: Normalize, difference, quantize and bit-pack mono samples
// Package dpcm turns a mono sample stream into a packed differential PCM
// bitstream small enough to live in microcontroller program memory.
//
// The pipeline is strictly linear:
//
//	Normalize -> Deltas -> Quantize -> Pack
//
// Each stage allocates its own output and never mutates its input. The
// only configuration is a Config: the symbol width in bits and the
// ascending threshold set that decides which symbol a delta becomes.
//
// Example:
//
//	enc, err := dpcm.NewEncoder(dpcm.TwoBit.Config())
//	res, err := enc.Encode(samples)
//	// res.Packed holds 4 symbols per byte, most significant first
package dpcm
