// Package stream reads a byte source in bounded blocks into a zoned buffer.
//
// The buffer has two kinds of regions:
//   - the carry zone, carryCap bytes long, holding the tail of the previous
//     block so that a scanner can look at matches crossing the block boundary;
//   - the fresh zone, blockSize bytes long, receiving newly read bytes.
//
// With layout CarryCopy and a pattern "madame" (carryCap 5) read in blocks of
// 16 the buffer looks like this:
//
//	0         5                               21
//	|<-carry->|<------------- fresh --------->|
//	          |                     |<-tail-->|
//
// After every block the tail (the last carryCap fresh bytes) is copied to the
// carry zone, so the carried bytes always sit directly in front of the next
// block and Border can return one contiguous slice.
//
// Layout DoubleBuffer alternates between two fresh zones A and B:
//
//	|<-carry->|<---------- A ---------->|<---------- B ---------->|
//
// Reading into B needs no copy since the tail of A already precedes it. Only
// when wrapping from B back to A is the tail of B copied to the carry zone.
//
// Invariants:
//   - blockSize > carryCap, so a full block always carries carryCap bytes;
//   - blocks are filled like io.ReadFull, a short block is the last one;
//   - Carry has zero length for the first block and carryCap bytes after it.
package stream

import (
	"errors"
	"fmt"
	"io"
)

// Layout selects the buffer management variant. Both variants expose the
// same spans and produce identical scans.
type Layout uint8

const (
	// CarryCopy uses one fresh zone and copies its tail to the carry zone
	// after every block.
	CarryCopy Layout = iota

	// DoubleBuffer alternates between two fresh zones and copies the tail
	// only when wrapping from the second zone back to the first.
	DoubleBuffer
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case CarryCopy:
		return "CarryCopy"
	case DoubleBuffer:
		return "DoubleBuffer"
	default:
		return fmt.Sprintf("Layout(%d)", l)
	}
}

// Reader reads blocks from a source into a zoned buffer.
//
// A Reader is NOT safe for concurrent use. The slices returned by Fresh,
// Carry and Border are only valid until the next call to Next or Reset.
type Reader struct {
	src       io.Reader
	layout    Layout
	carryCap  int
	blockSize int
	buf       []byte

	// zones holds the start offset of each fresh zone. CarryCopy only uses
	// zones[0].
	zones [2]int

	cur      int // zone holding the latest block
	freshLen int // bytes in the latest block
	carryLen int // carried bytes directly in front of zones[cur]
	blocks   int64
	eof      bool
}

// NewReader creates a Reader over src.
//
// carryCap is the carry zone length (pattern length minus one) and blockSize
// the fresh zone length. Panics if blockSize <= carryCap, carryCap < 0 or the
// layout is unknown; callers validate these before building a Reader.
func NewReader(src io.Reader, carryCap, blockSize int, layout Layout) *Reader {
	if carryCap < 0 || blockSize <= carryCap {
		panic(fmt.Sprintf("stream: invalid zones: carry %d, block %d", carryCap, blockSize))
	}

	zones := 1
	switch layout {
	case CarryCopy:
	case DoubleBuffer:
		zones = 2
	default:
		panic("stream: unknown layout " + layout.String())
	}

	r := &Reader{
		src:       src,
		layout:    layout,
		carryCap:  carryCap,
		blockSize: blockSize,
		buf:       make([]byte, carryCap+zones*blockSize),
	}
	r.zones[0] = carryCap
	r.zones[1] = carryCap + blockSize
	return r
}

// Reset prepares the Reader for a new source, keeping its buffer.
func (r *Reader) Reset(src io.Reader) {
	r.src = src
	r.cur = 0
	r.freshLen = 0
	r.carryLen = 0
	r.blocks = 0
	r.eof = false
}

// Next reads the next block and returns the number of bytes read.
//
// A return of 0 with a nil error means the source is exhausted. Errors from
// the source are returned unchanged; the Reader must not be used after one.
func (r *Reader) Next() (int, error) {
	if r.eof {
		r.freshLen = 0
		return 0, nil
	}

	next := r.nextZone()
	if r.blocks > 0 {
		r.carry(next)
	}

	start := r.zones[next]
	n, err := io.ReadFull(r.src, r.buf[start:start+r.blockSize])
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		r.eof = true
		r.freshLen = 0
		return 0, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.eof = true
	default:
		r.freshLen = 0
		return 0, err
	}

	r.cur = next
	r.freshLen = n
	r.blocks++
	return n, nil
}

// nextZone returns the zone the next block is read into.
func (r *Reader) nextZone() int {
	if r.layout == DoubleBuffer && r.blocks > 0 {
		return 1 - r.cur
	}
	return 0
}

// carry places the tail of the latest block directly in front of zone next.
// The latest block is full here since a short block sets eof.
func (r *Reader) carry(next int) {
	need := min(r.carryCap, r.freshLen)
	r.carryLen = need
	if need == 0 {
		return
	}

	tailStart := r.zones[r.cur] + r.freshLen - need
	dst := r.zones[next] - need
	if tailStart == dst {
		return
	}
	copy(r.buf[dst:r.zones[next]], r.buf[tailStart:tailStart+need])
}

// Fresh returns the bytes of the latest block.
func (r *Reader) Fresh() []byte {
	start := r.zones[r.cur]
	return r.buf[start : start+r.freshLen]
}

// Carry returns the bytes carried from the block before the latest one.
// It is empty for the first block.
func (r *Reader) Carry() []byte {
	start := r.zones[r.cur]
	return r.buf[start-r.carryLen : start]
}

// Border returns the border window of the latest block: the carried bytes
// followed by the first min(carryCap, len(Fresh())) fresh bytes. It is empty
// when nothing was carried.
func (r *Reader) Border() []byte {
	if r.carryLen == 0 {
		return nil
	}
	start := r.zones[r.cur]
	return r.buf[start-r.carryLen : start+min(r.carryCap, r.freshLen)]
}

// Blocks returns the number of non-empty blocks read so far.
func (r *Reader) Blocks() int64 {
	return r.blocks
}

// BlockSize returns the fresh zone length.
func (r *Reader) BlockSize() int {
	return r.blockSize
}

// CarryCap returns the carry zone length.
func (r *Reader) CarryCap() int {
	return r.carryCap
}
