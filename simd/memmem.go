package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.Index. To search for the same needle many times,
// build a Searcher once with NewSearcher.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	return NewSearcher(needle).Index(haystack)
}

// Searcher finds one needle in many haystacks. The rare byte is selected once
// at construction.
//
// A Searcher is immutable and safe for concurrent use.
type Searcher struct {
	needle  []byte
	rare    byte
	rareIdx int
}

// NewSearcher creates a Searcher for needle. The needle is copied.
func NewSearcher(needle []byte) *Searcher {
	s := &Searcher{needle: append([]byte(nil), needle...)}
	s.rare, s.rareIdx = RarestByte(s.needle)
	return s
}

// Needle returns the needle. The caller must not modify it.
func (s *Searcher) Needle() []byte {
	return s.needle
}

// Index returns the index of the first instance of the needle in haystack,
// or -1. An empty needle matches at 0, like bytes.Index.
//
// Algorithm:
//  1. Memchr finds the next occurrence of the rare byte
//  2. The needle would start rareIdx bytes before it
//  3. Verify the full needle there, otherwise continue after the candidate
func (s *Searcher) Index(haystack []byte) int {
	n := len(s.needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, s.needle[0])
	}

	// Candidates for the rare byte can only lie in [rareIdx, last].
	last := len(haystack) - n + s.rareIdx
	pos := s.rareIdx
	for pos <= last {
		c := Memchr(haystack[pos:last+1], s.rare)
		if c < 0 {
			return -1
		}
		pos += c
		start := pos - s.rareIdx
		if bytes.Equal(haystack[start:start+n], s.needle) {
			return start
		}
		pos++
	}
	return -1
}
