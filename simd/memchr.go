package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// vectorMin is the input length from which the vectorised runtime routine
// beats the SWAR loop.
const vectorMin = 32

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.IndexByte. Inputs of at least 32 bytes go to the
// runtime's vectorised routine when HasVectorUnit reports true; everything
// else uses the SWAR loop in memchrGeneric.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasVector && len(haystack) >= vectorMin {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// hasVector caches HasVectorUnit for the hot path.
var hasVector = HasVectorUnit()

// memchrGeneric searches eight bytes at a time using uint64 arithmetic.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64
//  2. XOR with an 8-byte chunk, matching bytes become 0x00
//  3. Detect a zero byte with (v - 0x01..01) & ^v & 0x80..80
//  4. The trailing zero count locates the first match in the chunk
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	const lo8 = 0x0101010101010101
	const hi8 = 0x8080808080808080
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
