// Package automaton implements the bit-parallel counting strategy.
//
// The counter is a shift-and automaton. One bit vector tracks every partial
// match in flight: bit i is set when the last i+1 bytes equal the first i+1
// pattern bytes. Each consumed byte c applies
//
//	state = ((state << 1) | 1) & mask(c)
//
// The shift advances every partial match, the OR admits a new match starting
// at c, and the AND drops partial matches whose next pattern byte is not c.
// When bit L-1 is set a full match ends at c. Only that bit is cleared, so
// shorter partial matches survive and overlapping occurrences are counted:
// "aba" over "ababa" yields 2.
//
// For the pattern "madame" the state develops like this (before clearing):
//
//	X  0000 0000  no match
//	m  0000 0001
//	a  0000 0010
//	d  0000 0100
//	a  0000 1000
//	m  0001 0001  fifth byte, and possibly a new first 'm'
//	e  0010 0000  hit, the alternative 'm' start died
//	X  0000 0000
package automaton

import (
	"context"
	"io"
	"sync"

	"github.com/coregx/strcount/bitvec"
	"github.com/coregx/strcount/stream"
)

// DefaultBufferSize is the number of bytes read from the source at a time.
const DefaultBufferSize = 1024

// Counter counts overlapping occurrences of a compiled pattern.
//
// A Counter is immutable and safe for concurrent use. Automaton state and
// read buffers belong to a single Count call.
type Counter struct {
	pattern   *bitvec.Pattern
	blockSize int
	sessions  sync.Pool
}

// session holds the mutable state of one Count call.
type session struct {
	state  bitvec.Vector
	reader *stream.Reader
}

// New compiles pattern into a Counter that reads blockSize bytes at a time.
// A blockSize < 1 selects DefaultBufferSize.
//
// Returns bitvec.ErrEmptyPattern if pattern is empty.
func New(pattern []byte, blockSize int) (*Counter, error) {
	p, err := bitvec.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if blockSize < 1 {
		blockSize = DefaultBufferSize
	}

	c := &Counter{pattern: p, blockSize: blockSize}
	c.sessions.New = func() any {
		return &session{
			state:  c.pattern.NewState(),
			reader: stream.NewReader(nil, 0, c.blockSize, stream.CarryCopy),
		}
	}
	return c, nil
}

// Pattern returns the compiled pattern.
func (c *Counter) Pattern() *bitvec.Pattern {
	return c.pattern
}

// Count reads r to exhaustion and returns the number of overlapping
// occurrences of the pattern. A read error is returned unchanged together
// with a zero count.
func (c *Counter) Count(r io.Reader) (uint64, error) {
	return c.CountContext(context.Background(), r)
}

// CountContext is like Count but stops before the next block read once ctx is
// done, returning ctx.Err().
func (c *Counter) CountContext(ctx context.Context, r io.Reader) (uint64, error) {
	s := c.sessions.Get().(*session)
	defer c.sessions.Put(s)

	s.state.Reset()
	s.reader.Reset(r)
	defer s.reader.Reset(nil)

	var total uint64
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n, err := s.reader.Next()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return total, nil
		}
		total += c.feed(s.state, s.reader.Fresh())
	}
}

// feed runs the automaton over data and returns the number of matches that
// end inside it. state carries over to the next call.
func (c *Counter) feed(state bitvec.Vector, data []byte) uint64 {
	hit := c.pattern.HitIndex()
	var n uint64
	for _, b := range data {
		state.ShiftIn()
		state.And(c.pattern.Mask(b))
		if state.Test(hit) {
			n++
			state.Clear(hit)
		}
	}
	return n
}
