// Package block implements the block/span counting strategy.
//
// The source is read in fixed-size blocks with package stream. Matches
// inside a block are found by direct substring search; matches straddling a
// block boundary are found by scanning a border window made of the last L-1
// bytes before the boundary and the first L-1 bytes after it, where L is the
// pattern length.
//
// Searching for "madame" in two blocks:
//
//	XXXmadameXXma
//	damemadame
//
// Border window: "eXXma" + "damem". Each block holds one match and the border
// window one more.
//
// No match is counted twice. A match inside the border window must include
// the byte before and the byte after the boundary, since neither half is
// long enough to hold L bytes, so it lies in no single block.
package block

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/coregx/strcount/finder"
	"github.com/coregx/strcount/internal/conv"
	"github.com/coregx/strcount/stream"
)

// ErrBlockTooSmall indicates a block size shorter than the pattern.
var ErrBlockTooSmall = errors.New("block size smaller than pattern length")

// Scanner counts overlapping occurrences of a pattern block by block.
//
// A Scanner is immutable and safe for concurrent use. Each Count call reads
// into its own buffer, taken from an internal pool.
type Scanner struct {
	pattern   []byte
	finder    finder.Finder
	blockSize int
	layout    stream.Layout
	readers   sync.Pool
}

// Options controls how a Scanner searches and buffers.
type Options struct {
	// Finder selects the substring search. Default: finder.Auto.
	Finder finder.Kind

	// Layout selects the buffer management variant. Default: stream.CarryCopy.
	Layout stream.Layout
}

// New creates a Scanner for pattern reading blocks of blockSize bytes.
//
// Returns finder.ErrEmptyPattern for an empty pattern and ErrBlockTooSmall if
// blockSize < len(pattern). Both are reported before anything is read.
func New(pattern []byte, blockSize int, opts Options) (*Scanner, error) {
	if len(pattern) == 0 {
		return nil, finder.ErrEmptyPattern
	}
	if blockSize < len(pattern) {
		return nil, fmt.Errorf("%w: block size %d, pattern length %d",
			ErrBlockTooSmall, blockSize, len(pattern))
	}
	if opts.Layout != stream.CarryCopy && opts.Layout != stream.DoubleBuffer {
		return nil, fmt.Errorf("block: unknown layout %v", opts.Layout)
	}

	f, err := finder.New(opts.Finder, pattern)
	if err != nil {
		return nil, err
	}

	s := &Scanner{
		pattern:   append([]byte(nil), pattern...),
		finder:    f,
		blockSize: blockSize,
		layout:    opts.Layout,
	}
	s.readers.New = func() any {
		return stream.NewReader(nil, len(s.pattern)-1, s.blockSize, s.layout)
	}
	return s, nil
}

// Pattern returns the pattern. The caller must not modify it.
func (s *Scanner) Pattern() []byte {
	return s.pattern
}

// BlockSize returns the block size.
func (s *Scanner) BlockSize() int {
	return s.blockSize
}

// Count reads r to exhaustion and returns the number of overlapping
// occurrences of the pattern. A read error is returned unchanged together
// with a zero count.
func (s *Scanner) Count(r io.Reader) (uint64, error) {
	return s.CountContext(context.Background(), r)
}

// CountContext is like Count but stops before the next block read once ctx is
// done, returning ctx.Err().
func (s *Scanner) CountContext(ctx context.Context, r io.Reader) (uint64, error) {
	br := s.getReader(r)
	defer s.putReader(br)

	var total uint64
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n, err := br.Next()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return total, nil
		}
		total += s.countBlock(br)
	}
}

// countBlock counts the matches contained in the latest block and the
// matches crossing into it from the previous block.
func (s *Scanner) countBlock(br *stream.Reader) uint64 {
	n := CountInterleaved(br.Fresh(), s.finder)
	// Border is empty for the first block and for single byte patterns.
	if border := br.Border(); len(border) > 0 {
		n += CountInterleaved(border, s.finder)
	}
	return conv.IntToUint64(n)
}

func (s *Scanner) getReader(r io.Reader) *stream.Reader {
	br := s.readers.Get().(*stream.Reader)
	br.Reset(r)
	return br
}

func (s *Scanner) putReader(br *stream.Reader) {
	br.Reset(nil)
	s.readers.Put(br)
}
