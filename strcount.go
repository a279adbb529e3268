// Package strcount counts overlapping occurrences of a fixed byte pattern in
// a stream.
//
// The input is read incrementally in bounded blocks, so arbitrarily large
// sources are counted in constant memory. Occurrences may overlap: "aba"
// occurs twice in "ababa", and "aa" three times in "aaaa".
//
// Two strategies implement the same contract:
//   - UseBitParallel: a shift-and automaton whose state width (32, 64, 128
//     bits or unbounded) scales with the pattern length
//   - UseBlockScan: substring search inside each block plus a border window
//     for matches straddling block boundaries
//
// Basic usage:
//
//	n, err := strcount.CountString("aba", "ababa")
//	fmt.Println(n) // 2
//
//	f, _ := os.Open("big.log")
//	defer f.Close()
//	n, err = strcount.Count("ERROR", f)
//
// Advanced usage:
//
//	config := strcount.DefaultConfig()
//	config.Strategy = strcount.UseBlockScan
//	config.Finder = finder.AhoCorasick
//	c, err := strcount.New("ERROR", config)
//	n, err := c.CountContext(ctx, f)
//
// Errors from the source are returned unchanged, with a zero count.
package strcount

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/coregx/strcount/automaton"
	"github.com/coregx/strcount/bitvec"
	"github.com/coregx/strcount/block"
)

// ErrEmptyPattern indicates that an empty pattern was given.
var ErrEmptyPattern = bitvec.ErrEmptyPattern

// ErrBlockTooSmall indicates a block size shorter than the pattern under the
// block scan strategy.
var ErrBlockTooSmall = block.ErrBlockTooSmall

// Counter counts overlapping occurrences of a pattern in a source.
//
// Implementations are safe for concurrent use. Every call reads its source to
// exhaustion and owns its own state and buffers.
type Counter interface {
	// Count reads r to exhaustion and returns the number of occurrences.
	Count(r io.Reader) (uint64, error)

	// CountContext is like Count but stops before the next block read once
	// ctx is done.
	CountContext(ctx context.Context, r io.Reader) (uint64, error)
}

// New compiles pattern into a Counter using config.
//
// Configuration problems, an empty pattern and a block size shorter than the
// pattern under UseBlockScan are reported as *ConfigError before anything is
// read. errors.Is matches ErrEmptyPattern and ErrBlockTooSmall through it.
//
// Example:
//
//	c, err := strcount.New("madame", strcount.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, _ := c.Count(strings.NewReader("madamemadame")) // 2
func New(pattern string, config Config) (Counter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	p := []byte(pattern)
	if len(p) == 0 {
		return nil, &ConfigError{Field: "Pattern", Message: "must not be empty", Err: ErrEmptyPattern}
	}

	switch SelectStrategy(p, config) {
	case UseBitParallel:
		c, err := automaton.New(p, config.BlockSize)
		if err != nil {
			return nil, &ConfigError{Field: "Pattern", Message: "cannot compile", Err: err}
		}
		return c, nil

	default:
		s, err := block.New(p, config.BlockSize, block.Options{Finder: config.Finder, Layout: config.Layout})
		if err != nil {
			if errors.Is(err, ErrBlockTooSmall) {
				return nil, &ConfigError{Field: "BlockSize", Message: "shorter than pattern", Err: err}
			}
			return nil, &ConfigError{Field: "Finder", Message: "cannot build " + config.Finder.String(), Err: err}
		}
		return s, nil
	}
}

// MustNew is like New but panics if the counter cannot be built.
func MustNew(pattern string, config Config) Counter {
	c, err := New(pattern, config)
	if err != nil {
		panic("strcount: New(`" + pattern + "`): " + err.Error())
	}
	return c
}

// Count counts the occurrences of pattern in r with the default config.
func Count(pattern string, r io.Reader) (uint64, error) {
	c, err := New(pattern, DefaultConfig())
	if err != nil {
		return 0, err
	}
	return c.Count(r)
}

// CountString counts the occurrences of pattern in s.
func CountString(pattern, s string) (uint64, error) {
	return Count(pattern, strings.NewReader(s))
}

// CountBytes counts the occurrences of pattern in b.
func CountBytes(pattern string, b []byte) (uint64, error) {
	return Count(pattern, bytes.NewReader(b))
}
