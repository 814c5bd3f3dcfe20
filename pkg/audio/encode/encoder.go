// ABOUTME: Encoder interface definition
// ABOUTME: Shared by the DPCM encoder and the raw PCM encoder that feeds sox
package encode

// Encoder turns int32 samples in the 24-bit range into encoded bytes
type Encoder interface {
	// Encode converts samples to encoded data
	Encode(samples []int32) ([]byte, error)

	// Close releases encoder resources
	Close() error
}

var (
	_ Encoder = (*DPCMEncoder)(nil)
	_ Encoder = (*PCMEncoder)(nil)
)
