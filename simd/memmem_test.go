package simd

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestMemmemBasic tests basic functionality and edge cases
func TestMemmemBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 0},
		{"empty_haystack", "", "x", -1},
		{"both_empty", "", "", 0},
		{"single_found", "hello", "e", 1},
		{"single_not_found", "hello", "x", -1},
		{"at_start", "hello world", "hello", 0},
		{"at_end", "hello world", "world", 6},
		{"in_middle", "hello world", "lo wo", 3},
		{"not_found", "hello world", "xyz", -1},
		{"exact_match", "hello", "hello", 0},
		{"needle_too_long", "hi", "hello", -1},
		{"multiple_returns_first", "hello hello", "hello", 0},
		{"overlapping_pattern", "aaaa", "aa", 0},
		{"repeated_prefix", "aaaaaabaaaa", "aab", 4},
		{"rare_byte_first", "zzzq_zq", "zq", 2},
		{"rare_byte_near_end", "madamXmadame", "madame", 6},
		{"with_null_bytes", "\x00\x01\x02\x03\x04", "\x02\x03", 2},
		{"high_bytes", "\x01\x02\xff\xfe\x05", "\xff\xfe", 2},
		{"http_method", "GET /index.html HTTP/1.1", "HTTP", 16},
		{"border_window", "_ab" + "a__", "aba", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, n := []byte(tt.haystack), []byte(tt.needle)
			got := Memmem(h, n)
			if got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if std := bytes.Index(h, n); got != std {
				t.Errorf("Memmem != stdlib: got %d, stdlib %d", got, std)
			}
		})
	}
}

// TestSearcherRandom compares the Searcher with bytes.Index over random input
// drawn from a small alphabet, where candidates and near misses are frequent.
func TestSearcherRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("ab_")

	gen := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return b
	}

	for i := 0; i < 2000; i++ {
		needle := gen(1 + rng.Intn(6))
		haystack := gen(rng.Intn(80))
		s := NewSearcher(needle)
		if got, want := s.Index(haystack), bytes.Index(haystack, needle); got != want {
			t.Fatalf("Index(%q) with needle %q = %d, want %d", haystack, needle, got, want)
		}
	}
}

func TestSearcherCopiesNeedle(t *testing.T) {
	needle := []byte("abc")
	s := NewSearcher(needle)
	needle[0] = 'x'
	if string(s.Needle()) != "abc" {
		t.Errorf("Needle() = %q, want %q", s.Needle(), "abc")
	}
	if got := s.Index([]byte("xxabc")); got != 2 {
		t.Errorf("Index = %d, want 2", got)
	}
}

func TestRarestByte(t *testing.T) {
	tests := []struct {
		needle string
		rare   byte
		index  int
	}{
		{"", 0, -1},
		{"a", 'a', 0},
		{"the", 'h', 1},
		{"zebra", 'z', 0},
		{"aa", 'a', 1},
	}
	for _, tt := range tests {
		rare, index := RarestByte([]byte(tt.needle))
		if rare != tt.rare || index != tt.index {
			t.Errorf("RarestByte(%q) = %q, %d; want %q, %d", tt.needle, rare, index, tt.rare, tt.index)
		}
	}
	if ByteRank(' ') != 255 || ByteRank('Z') >= ByteRank('e') {
		t.Error("unexpected byte ranks")
	}
}

func BenchmarkMemmem(b *testing.B) {
	haystack := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 1000)
	s := NewSearcher([]byte("lazy cat"))
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Index(haystack)
	}
}
