package main

import (
	"encoding/binary"
	"math/bits"
)

// laneSize is how many bytes one pass of the vectorized scan covers.
const laneSize = 64

const (
	newlineSplat = 0x0a0a0a0a0a0a0a0a
	lowBits      = 0x0101010101010101
	highBits     = 0x8080808080808080
)

// findNextNewline returns the offset of the first '\n' in buf, or -1 if buf
// has none. Full 64-byte lanes are scanned as eight word-wide compares; the
// leftover tail goes byte by byte. Output-identical to a plain scan.
func findNextNewline(buf []byte) int {
	i := 0
	for i+laneSize <= len(buf) {
		for w := 0; w < laneSize; w += 8 {
			v := binary.LittleEndian.Uint64(buf[i+w:])
			// https://graphics.stanford.edu/~seander/bithacks.html#ZeroInWord
			q := v ^ newlineSplat
			r := ((q - lowBits) &^ q) & highBits
			if r != 0 {
				// The lowest set bit can only belong to a real match;
				// borrow-induced false positives sit above one.
				return i + w + bits.TrailingZeros64(r)>>3
			}
		}
		i += laneSize
	}
	for ; i < len(buf); i++ {
		if buf[i] == '\n' {
			return i
		}
	}
	return -1
}
