// Package conv provides checked integer conversion helpers for the counters.
//
// Match counts are accumulated as uint64 while the search primitives report
// positions and per-span counts as int. These helpers panic on a negative
// value since that can only come from a programming error.
package conv

// IntToUint64 converts a non-negative int to uint64.
// Panics if n < 0.
//
//go:inline
func IntToUint64(n int) uint64 {
	if n < 0 {
		panic("integer overflow: negative int used as uint64 count")
	}
	return uint64(n)
}
