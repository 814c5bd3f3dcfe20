// ABOUTME: Audio decoder package for file sources and raw PCM chunks
// ABOUTME: Provides WAV, MP3, FLAC and Ogg Opus sources plus a PCM decoder
// Package decode turns audio files into sample streams for the encoder.
//
// Supported files: WAV (8/16/24/32-bit PCM), MP3, FLAC, Ogg Opus.
//
// All sources implement the Source interface and output int32 samples
// in 24-bit range, interleaved when the file has more than one channel.
// The PCM Decoder handles raw little-endian chunks such as the output of
// an external resampler.
//
// Example:
//
//	src, err := decode.Open("hello.wav", decode.Options{})
//	defer src.Close()
//	buf, err := decode.ReadAll(src)
package decode
