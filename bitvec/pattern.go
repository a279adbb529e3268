package bitvec

import "errors"

// ErrEmptyPattern indicates that an empty pattern was given. Every position of
// every input would match it, so counting it is refused.
var ErrEmptyPattern = errors.New("empty pattern")

// Pattern is a compiled search pattern.
//
// A Pattern is immutable after Compile and safe for concurrent use. Automaton
// state is never stored in it; call NewState once per counting session.
type Pattern struct {
	raw   []byte
	width Width

	// masks[c] has bit i set iff raw[i] == c. Bytes absent from the pattern
	// share one zero vector.
	//
	// For "madame":
	//   masks['m'] = ...0001 0001
	//   masks['a'] = ...0000 1010
	//   masks['d'] = ...0000 0100
	//   masks['e'] = ...0010 0000
	masks [256]Vector

	// hit has only bit len(raw)-1 set.
	hit settable
}

// Compile builds the masks for pattern. The pattern bytes are copied.
//
// Returns ErrEmptyPattern if pattern is empty.
func Compile(pattern []byte) (*Pattern, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	w := WidthFor(len(pattern))
	p := &Pattern{
		raw:   append([]byte(nil), pattern...),
		width: w,
	}

	var built [256]settable
	for i, c := range p.raw {
		if built[c] == nil {
			built[c] = newVector(w)
		}
		built[c].set(i)
	}

	zero := newVector(w)
	for c := range p.masks {
		if built[c] != nil {
			p.masks[c] = built[c]
		} else {
			p.masks[c] = zero
		}
	}

	p.hit = newVector(w)
	p.hit.set(len(p.raw) - 1)
	return p, nil
}

// Bytes returns the pattern bytes. The caller must not modify them.
func (p *Pattern) Bytes() []byte {
	return p.raw
}

// Len returns the pattern length.
func (p *Pattern) Len() int {
	return len(p.raw)
}

// Width returns the width class selected for the pattern.
func (p *Pattern) Width() Width {
	return p.width
}

// Mask returns the position mask of byte c. The caller must not modify it.
func (p *Pattern) Mask(c byte) Vector {
	return p.masks[c]
}

// HitIndex returns the bit that marks a completed match, len(pattern)-1.
func (p *Pattern) HitIndex() int {
	return len(p.raw) - 1
}

// HitMask returns the vector with only HitIndex set. Testing a state against it
// is state.Test(HitIndex()); removing the completed match from a state without
// disturbing shorter partial matches is state.Clear(HitIndex()).
func (p *Pattern) HitMask() Vector {
	return p.hit
}

// NewState returns a zero automaton state of the pattern's width class.
func (p *Pattern) NewState() Vector {
	return newVector(p.width)
}

// DistinctBytes returns the number of distinct bytes in pattern.
func DistinctBytes(pattern []byte) int {
	var seen [256]bool
	n := 0
	for _, c := range pattern {
		if !seen[c] {
			seen[c] = true
			n++
		}
	}
	return n
}
