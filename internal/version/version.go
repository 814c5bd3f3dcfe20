// ABOUTME: Build identification constants
// ABOUTME: Reported by -version and logged when a run starts
package version

const (
	// Version is the release of this build
	Version = "0.3.0"

	// Product is the tool's name as shown to users
	Product = "wave2dpcm"
)

// String returns "<product> <version>"
func String() string {
	return Product + " " + Version
}
