// Package bitvec compiles a pattern into the per-byte bit masks used by the
// bit-parallel counter.
//
// The automaton state for a pattern of length L needs at least L bits. The
// width class is chosen once from L:
//   - L <= 32: W32, a single uint32
//   - L <= 64: W64, a single uint64
//   - L <= 128: W128, a pair of uint64 words
//   - L > 128: WBig, an arbitrary precision math/big.Int
//
// Every width class implements the same Vector interface, so the transition
// code in package automaton never needs to know which one it is driving.
//
// Example:
//
//	p, err := bitvec.Compile([]byte("madame"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Width()) // W32
package bitvec

import "fmt"

// Width is the bit-vector representation class used for automaton state.
type Width uint8

const (
	// W32 holds patterns of up to 32 bytes.
	W32 Width = iota

	// W64 holds patterns of 33 to 64 bytes.
	W64

	// W128 holds patterns of 65 to 128 bytes.
	W128

	// WBig holds patterns longer than 128 bytes.
	WBig
)

// widthLimits maps each native width class to the longest pattern it holds.
// Patterns longer than the last entry use WBig.
var widthLimits = [...]struct {
	width Width
	max   int
}{
	{W32, 32},
	{W64, 64},
	{W128, 128},
}

// WidthFor returns the width class for a pattern of length n.
// n must be at least 1.
func WidthFor(n int) Width {
	for _, l := range widthLimits {
		if n <= l.max {
			return l.width
		}
	}
	return WBig
}

// Bits returns the number of state bits of the width class.
// WBig reports 0 since it grows as needed.
func (w Width) Bits() int {
	switch w {
	case W32:
		return 32
	case W64:
		return 64
	case W128:
		return 128
	default:
		return 0
	}
}

// String returns a human-readable width class name.
func (w Width) String() string {
	switch w {
	case W32:
		return "W32"
	case W64:
		return "W64"
	case W128:
		return "W128"
	case WBig:
		return "WBig"
	default:
		return fmt.Sprintf("Width(%d)", w)
	}
}
