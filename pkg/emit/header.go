// ABOUTME: C header writer for packed DPCM data
// ABOUTME: Derives array names from input paths and writes headers atomically
package emit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SymbolPrefix starts every emitted array name
const SymbolPrefix = "DPCM_"

// SymbolName returns the C identifier for an input file: DPCM_ followed by
// the file's base name without extension, with every character that is not
// valid in an identifier replaced by '_'
func SymbolName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, base)

	return SymbolPrefix + clean
}

// HeaderPath returns where the header for input goes. An empty outDir means
// next to the input file.
func HeaderPath(input, outDir string) string {
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	return filepath.Join(outDir, SymbolName(input)+".h")
}

// WriteHeader renders data as a PROGMEM array named name
func WriteHeader(w io.Writer, name string, data []byte) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "const uint8_t %s[] PROGMEM = {\n", name); err != nil {
		return err
	}
	for _, b := range data {
		fmt.Fprintf(bw, "  %d,\n", b)
	}
	bw.WriteString("};\n")

	return bw.Flush()
}

// WriteHeaderFile writes the header to path. The file is written to a
// temporary name in the same directory and renamed into place, so a failed
// run never leaves a truncated header behind.
func WriteHeaderFile(path, name string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wave2dpcm-*.h")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteHeader(tmp, name, data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set header permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move header into place: %w", err)
	}
	return nil
}
