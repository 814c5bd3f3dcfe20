// ABOUTME: Decoder and Source interface definitions
// ABOUTME: Chunk decoders for raw PCM and whole-file sample sources
package decode

import "github.com/flashvoice/wave2dpcm/pkg/audio"

// Decoder decodes a chunk of encoded audio to PCM int32 samples
type Decoder interface {
	// Decode converts encoded audio data to PCM samples
	Decode(data []byte) ([]int32, error)

	// Close releases decoder resources
	Close() error
}

// Source yields the samples of one audio file
type Source interface {
	// Read fills samples with interleaved PCM in the 24-bit range. It
	// returns 0, io.EOF once the file is exhausted.
	Read(samples []int32) (int, error)

	// Format describes the decoded stream
	Format() audio.Format

	// Close releases the underlying file
	Close() error
}

var (
	_ Decoder = (*PCMDecoder)(nil)

	_ Source = (*WAVSource)(nil)
	_ Source = (*MP3Source)(nil)
	_ Source = (*FLACSource)(nil)
	_ Source = (*OpusSource)(nil)
	_ Source = (*ToneSource)(nil)
)
