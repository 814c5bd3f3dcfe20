// ABOUTME: Generic sub-byte symbol packer
// ABOUTME: Packs fixed-width symbols into bytes, most significant first
package dpcm

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// ValidWidth reports whether width bits evenly divide a byte
func ValidWidth(width int) bool {
	return width > 0 && width <= 8 && 8%width == 0
}

// SymbolsPerByte returns 8/width
func SymbolsPerByte(width int) int {
	return 8 / width
}

// Dropped returns how many of n symbols are left over after packing at width
func Dropped(n, width int) int {
	if !ValidWidth(width) {
		return 0
	}
	return n % SymbolsPerByte(width)
}

// Pack groups symbols 8/width at a time into bytes. The first symbol of a
// group lands in the most significant bits. Symbols that do not complete a
// final group are dropped.
func Pack(symbols []uint8, width int) ([]byte, error) {
	if !ValidWidth(width) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitWidth, width)
	}

	limit := uint8(1<<width - 1)
	perByte := SymbolsPerByte(width)
	packed := make([]byte, len(symbols)/perByte)

	for i := range packed {
		var acc uint8
		for _, s := range symbols[i*perByte : (i+1)*perByte] {
			if s > limit {
				return nil, fmt.Errorf("%w: %d in %d bits", ErrSymbolOverflow, s, width)
			}
			acc = acc<<width | s
		}
		packed[i] = acc
	}
	return packed, nil
}

// Unpack splits packed bytes back into width-bit symbols in the order Pack wrote them
func Unpack(packed []byte, width int) ([]uint8, error) {
	if !ValidWidth(width) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitWidth, width)
	}

	r := bitio.NewReader(bytes.NewReader(packed))
	symbols := make([]uint8, len(packed)*SymbolsPerByte(width))
	for i := range symbols {
		v, err := r.ReadBits(uint8(width))
		if err != nil {
			return nil, fmt.Errorf("failed to read symbol %d: %w", i, err)
		}
		symbols[i] = uint8(v)
	}
	return symbols, nil
}
