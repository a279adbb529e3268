package bitvec

import (
	"math/big"
	"math/bits"
)

// Vector is a mutable bit vector of one width class.
//
// The bit-parallel transition only needs a shift with carry-in, a bitwise AND
// and a test/clear of a single bit. And must be given a Vector of the same width
// class as the receiver; vectors obtained from one Pattern always satisfy this.
type Vector interface {
	// ShiftIn shifts the vector left by one and sets bit 0.
	ShiftIn()

	// And replaces the vector with the bitwise AND of itself and m.
	And(m Vector)

	// Test reports whether bit i is set.
	Test(i int) bool

	// Clear unsets bit i.
	Clear(i int)

	// Reset sets every bit to zero.
	Reset()
}

// settable is implemented by every Vector so masks can be built without
// widening the public interface.
type settable interface {
	Vector
	set(i int)
	onesCount() int
}

// newVector returns a zero vector of width w.
func newVector(w Width) settable {
	switch w {
	case W32:
		return new(vec32)
	case W64:
		return new(vec64)
	case W128:
		return new(vec128)
	default:
		return &vecBig{v: new(big.Int)}
	}
}

type vec32 struct{ w uint32 }

func (v *vec32) ShiftIn()        { v.w = v.w<<1 | 1 }
func (v *vec32) And(m Vector)    { v.w &= m.(*vec32).w }
func (v *vec32) Test(i int) bool { return v.w&(1<<uint(i)) != 0 }
func (v *vec32) Clear(i int)     { v.w &^= 1 << uint(i) }
func (v *vec32) Reset()          { v.w = 0 }
func (v *vec32) set(i int)       { v.w |= 1 << uint(i) }
func (v *vec32) onesCount() int  { return bits.OnesCount32(v.w) }

type vec64 struct{ w uint64 }

func (v *vec64) ShiftIn()        { v.w = v.w<<1 | 1 }
func (v *vec64) And(m Vector)    { v.w &= m.(*vec64).w }
func (v *vec64) Test(i int) bool { return v.w&(1<<uint(i)) != 0 }
func (v *vec64) Clear(i int)     { v.w &^= 1 << uint(i) }
func (v *vec64) Reset()          { v.w = 0 }
func (v *vec64) set(i int)       { v.w |= 1 << uint(i) }
func (v *vec64) onesCount() int  { return bits.OnesCount64(v.w) }

// vec128 keeps bits 0-63 in lo and bits 64-127 in hi.
type vec128 struct{ lo, hi uint64 }

func (v *vec128) ShiftIn() {
	v.hi = v.hi<<1 | v.lo>>63
	v.lo = v.lo<<1 | 1
}

func (v *vec128) And(m Vector) {
	o := m.(*vec128)
	v.lo &= o.lo
	v.hi &= o.hi
}

func (v *vec128) Test(i int) bool {
	if i < 64 {
		return v.lo&(1<<uint(i)) != 0
	}
	return v.hi&(1<<uint(i-64)) != 0
}

func (v *vec128) Clear(i int) {
	if i < 64 {
		v.lo &^= 1 << uint(i)
		return
	}
	v.hi &^= 1 << uint(i-64)
}

func (v *vec128) Reset() { v.lo, v.hi = 0, 0 }

func (v *vec128) set(i int) {
	if i < 64 {
		v.lo |= 1 << uint(i)
		return
	}
	v.hi |= 1 << uint(i-64)
}

func (v *vec128) onesCount() int { return bits.OnesCount64(v.lo) + bits.OnesCount64(v.hi) }

// vecBig grows with the shift; the AND with a pattern mask bounds it to the
// pattern length again on every transition.
type vecBig struct{ v *big.Int }

func (v *vecBig) ShiftIn() {
	v.v.Lsh(v.v, 1)
	v.v.SetBit(v.v, 0, 1)
}

func (v *vecBig) And(m Vector)    { v.v.And(v.v, m.(*vecBig).v) }
func (v *vecBig) Test(i int) bool { return v.v.Bit(i) != 0 }
func (v *vecBig) Clear(i int)     { v.v.SetBit(v.v, i, 0) }
func (v *vecBig) Reset()          { v.v.SetInt64(0) }
func (v *vecBig) set(i int)       { v.v.SetBit(v.v, i, 1) }

func (v *vecBig) onesCount() int {
	n := 0
	for _, w := range v.v.Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n
}
