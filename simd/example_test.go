package simd_test

import (
	"fmt"

	"github.com/coregx/strcount/simd"
)

// ExampleMemmem demonstrates basic substring search.
func ExampleMemmem() {
	pos := simd.Memmem([]byte("hello world"), []byte("world"))
	fmt.Println(pos)
	// Output: 6
}

// ExampleSearcher demonstrates reusing one needle across haystacks.
func ExampleSearcher() {
	s := simd.NewSearcher([]byte("aba"))
	fmt.Println(s.Index([]byte("xxabab")), s.Index([]byte("ab")))
	// Output: 2 -1
}

// ExampleMemchr demonstrates single byte search.
func ExampleMemchr() {
	fmt.Println(simd.Memchr([]byte("hello world"), 'o'))
	// Output: 4
}
