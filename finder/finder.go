// Package finder provides the substring search used by the block scanner.
//
// A Finder locates the first occurrence of one fixed pattern in a span. The
// block scanner only needs that single primitive; overlapping occurrences are
// found by searching again one byte after every hit.
//
// The package selects the search implementation from a Kind:
//   - Memchr: single byte patterns, SWAR/vectorised byte search
//   - Stdlib: bytes.Index, vectorised by the Go runtime on amd64 and arm64
//   - Memmem: rare-byte candidate scan with verification (package simd)
//   - AhoCorasick: an automaton built from the single pattern
//   - Auto: Memchr for one byte, Stdlib otherwise
//
// All implementations return identical positions.
//
// Example usage:
//
//	f, err := finder.New(finder.Memmem, []byte("aba"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pos := f.Index([]byte("xxabab"))
//	// pos == 2
package finder

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/strcount/simd"
)

// Common finder errors
var (
	// ErrEmptyPattern indicates an empty pattern was given.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrUnknownKind indicates a Kind outside the defined set.
	ErrUnknownKind = errors.New("unknown finder kind")

	// ErrNotSingleByte indicates the Memchr finder was asked for a pattern
	// longer than one byte.
	ErrNotSingleByte = errors.New("memchr finder needs a single-byte pattern")
)

// Finder locates a fixed pattern.
type Finder interface {
	// Index returns the index of the first occurrence of the pattern in
	// haystack, or -1 if there is none.
	Index(haystack []byte) int

	// Len returns the pattern length.
	Len() int
}

// Kind selects a Finder implementation.
type Kind uint8

const (
	// Auto picks Memchr for single byte patterns and Stdlib otherwise.
	Auto Kind = iota

	// Stdlib uses bytes.Index.
	Stdlib

	// Memmem uses simd.Searcher.
	Memmem

	// Memchr uses simd.Memchr. The pattern must be one byte long.
	Memchr

	// AhoCorasick uses github.com/coregx/ahocorasick.
	AhoCorasick
)

var kindNames = [...]string{
	Auto:        "auto",
	Stdlib:      "stdlib",
	Memmem:      "memmem",
	Memchr:      "memchr",
	AhoCorasick: "ahocorasick",
}

// String returns the lower-case kind name used on the command line.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is a defined kind.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Resolve returns the concrete kind that New builds for kind and a pattern of
// length n.
func Resolve(kind Kind, n int) Kind {
	if kind != Auto {
		return kind
	}
	if n == 1 {
		return Memchr
	}
	return Stdlib
}

// New builds a Finder of the given kind for pattern. The pattern is copied.
func New(kind Kind, pattern []byte) (Finder, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := append([]byte(nil), pattern...)

	switch Resolve(kind, len(p)) {
	case Stdlib:
		return stdlibFinder(p), nil
	case Memmem:
		return memmemFinder{simd.NewSearcher(p)}, nil
	case Memchr:
		if len(p) != 1 {
			return nil, ErrNotSingleByte
		}
		return memchrFinder(p[0]), nil
	case AhoCorasick:
		return newAhoCorasickFinder(p)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

type stdlibFinder []byte

func (f stdlibFinder) Index(haystack []byte) int { return bytes.Index(haystack, f) }
func (f stdlibFinder) Len() int                  { return len(f) }

type memmemFinder struct{ s *simd.Searcher }

func (f memmemFinder) Index(haystack []byte) int { return f.s.Index(haystack) }
func (f memmemFinder) Len() int                  { return len(f.s.Needle()) }

type memchrFinder byte

func (f memchrFinder) Index(haystack []byte) int { return simd.Memchr(haystack, byte(f)) }
func (f memchrFinder) Len() int                  { return 1 }

// ahoCorasickFinder runs an Aho-Corasick automaton holding one pattern.
// The automaton is read-only during search and safe for concurrent use.
type ahoCorasickFinder struct {
	auto *ahocorasick.Automaton
	n    int
}

func newAhoCorasickFinder(pattern []byte) (Finder, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build aho-corasick automaton: %w", err)
	}
	return &ahoCorasickFinder{auto: auto, n: len(pattern)}, nil
}

func (f *ahoCorasickFinder) Index(haystack []byte) int {
	if len(haystack) < f.n {
		return -1
	}
	m := f.auto.Find(haystack, 0)
	if m == nil {
		return -1
	}
	return m.Start
}

func (f *ahoCorasickFinder) Len() int { return f.n }
