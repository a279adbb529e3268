// Package simd provides fast byte and substring search primitives for the
// block scanner.
//
// Everything here is pure Go. Memchr uses SWAR (SIMD Within A Register) on
// eight bytes at a time and hands large inputs to the runtime's vectorised
// bytes.IndexByte when the CPU has a vector unit. Memmem scans for the rarest
// needle byte with Memchr and verifies each candidate.
//
// CPU features are detected once at package initialization with
// golang.org/x/sys/cpu.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasAVX2 indicates 256-bit vector support on x86-64.
	hasAVX2 = cpu.X86.HasAVX2

	// hasSSE42 indicates 128-bit string instructions on x86-64.
	hasSSE42 = cpu.X86.HasSSE42

	// hasASIMD indicates NEON (Advanced SIMD) support on arm64.
	hasASIMD = cpu.ARM64.HasASIMD
)

// Features reports the vector extensions detected on this CPU.
type Features struct {
	AVX2  bool
	SSE42 bool
	ASIMD bool
}

// CPUFeatures returns the detected vector extensions.
func CPUFeatures() Features {
	return Features{
		AVX2:  hasAVX2,
		SSE42: hasSSE42,
		ASIMD: hasASIMD,
	}
}

// HasVectorUnit reports whether the runtime's byte search routines run
// vectorised on this CPU.
func HasVectorUnit() bool {
	return hasAVX2 || hasSSE42 || hasASIMD
}

// String lists the detected extensions, or "none".
func (f Features) String() string {
	s := ""
	add := func(ok bool, name string) {
		if !ok {
			return
		}
		if s != "" {
			s += ","
		}
		s += name
	}
	add(f.AVX2, "avx2")
	add(f.SSE42, "sse4.2")
	add(f.ASIMD, "asimd")
	if s == "" {
		return "none"
	}
	return s
}
