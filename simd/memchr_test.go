package simd

import (
	"bytes"
	"fmt"
	"testing"
)

func TestMemchrBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'a', -1},
		{"single_found", "a", 'a', 0},
		{"single_not_found", "b", 'a', -1},
		{"short_end", "abcdefg", 'g', 6},
		{"chunk_boundary", "01234567x", 'x', 8},
		{"first_of_many", "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", 'x', 0},
		{"null_byte", "abc\x00def", 0, 3},
		{"high_byte", "abc\xffdef", 0xff, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestMemchrSizes places the needle at every position of inputs around the
// SWAR chunk size and the vector threshold.
func TestMemchrSizes(t *testing.T) {
	for _, size := range []int{1, 7, 8, 9, 15, 16, 31, 32, 33, 64, 100} {
		for pos := 0; pos < size; pos++ {
			h := bytes.Repeat([]byte{'.'}, size)
			h[pos] = '#'
			if got := Memchr(h, '#'); got != pos {
				t.Fatalf("size %d pos %d: Memchr = %d", size, pos, got)
			}
			if got := memchrGeneric(h, '#'); got != pos {
				t.Fatalf("size %d pos %d: memchrGeneric = %d", size, pos, got)
			}
		}
		if got := memchrGeneric(bytes.Repeat([]byte{'.'}, size), '#'); got != -1 {
			t.Errorf("size %d: not-found = %d", size, got)
		}
	}
}

func TestMemchrAllBytes(t *testing.T) {
	h := make([]byte, 256)
	for i := range h {
		h[i] = byte(i)
	}
	for b := 0; b < 256; b++ {
		if got := memchrGeneric(h, byte(b)); got != b {
			t.Errorf("memchrGeneric(all, %#x) = %d", b, got)
		}
	}
}

func TestFeaturesString(t *testing.T) {
	tests := []struct {
		f    Features
		want string
	}{
		{Features{}, "none"},
		{Features{AVX2: true}, "avx2"},
		{Features{AVX2: true, SSE42: true}, "avx2,sse4.2"},
		{Features{ASIMD: true}, "asimd"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.f, got, tt.want)
		}
	}

	f := CPUFeatures()
	if HasVectorUnit() != (f.AVX2 || f.SSE42 || f.ASIMD) {
		t.Errorf("HasVectorUnit disagrees with CPUFeatures %v", f)
	}
}

func BenchmarkMemchr(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		h := bytes.Repeat([]byte{'a'}, size)
		h[size-1] = 'z'
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				Memchr(h, 'z')
			}
		})
	}
}
