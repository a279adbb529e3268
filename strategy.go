package strcount

import (
	"errors"
	"fmt"

	"github.com/coregx/strcount/bitvec"
	"github.com/coregx/strcount/simd"
)

// Strategy selects the counting algorithm.
//
// Both strategies produce the same count for every pattern and input. The
// choice only affects speed.
type Strategy uint8

const (
	// UseAuto picks a strategy from the pattern shape, see SelectStrategy.
	UseAuto Strategy = iota

	// UseBitParallel runs a shift-and automaton over every input byte.
	// Its cost per byte is independent of how often the pattern matches.
	UseBitParallel

	// UseBlockScan searches each block with a substring finder and stitches
	// matches across block boundaries. It skips ahead between candidates.
	UseBlockScan
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognised name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseAuto:
		return "UseAuto"
	case UseBitParallel:
		return "UseBitParallel"
	case UseBlockScan:
		return "UseBlockScan"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// ParseStrategy returns the strategy named by s: "auto", "bitparallel" or
// "blockscan".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "auto", "":
		return UseAuto, nil
	case "bitparallel":
		return UseBitParallel, nil
	case "blockscan":
		return UseBlockScan, nil
	}
	return UseAuto, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// hasVectorUnit is swapped out by tests.
var hasVectorUnit = simd.HasVectorUnit

// SelectStrategy returns the strategy New uses for pattern under config.
//
// Selection order:
//  1. config.Strategy if it is not UseAuto
//  2. len > config.BlockSize: bit-parallel, block scan needs whole matches
//     to fit a block
//  3. at most 2 distinct bytes and length >= 4: bit-parallel
//  4. 32 < len <= 128: bit-parallel on a native 64 or 128 bit state
//  5. no vector unit and len <= 64: bit-parallel
//  6. block scan
func SelectStrategy(pattern []byte, config Config) Strategy {
	if config.Strategy != UseAuto {
		return config.Strategy
	}

	n := len(pattern)
	if n > config.BlockSize {
		return UseBitParallel
	}
	if n >= 4 && bitvec.DistinctBytes(pattern) <= 2 {
		return UseBitParallel
	}

	w := bitvec.WidthFor(n)
	if w == bitvec.W64 || w == bitvec.W128 {
		return UseBitParallel
	}
	if !hasVectorUnit() && n <= 64 {
		return UseBitParallel
	}
	return UseBlockScan
}

// StrategyReason explains why SelectStrategy picks strategy for pattern.
// Useful for diagnostics.
func StrategyReason(strategy Strategy, pattern []byte, config Config) string {
	if config.Strategy != UseAuto {
		return "forced by configuration"
	}

	n := len(pattern)
	switch strategy {
	case UseBitParallel:
		if n > config.BlockSize {
			return fmt.Sprintf("pattern longer than the %d byte block", config.BlockSize)
		}
		if n >= 4 && bitvec.DistinctBytes(pattern) <= 2 {
			return "repetitive pattern, at most 2 distinct bytes"
		}
		if w := bitvec.WidthFor(n); w == bitvec.W64 || w == bitvec.W128 {
			return fmt.Sprintf("long pattern fits a native %d bit state", w.Bits())
		}
		return "no vector unit for substring search (" + simd.CPUFeatures().String() + ")"

	case UseBlockScan:
		if n > 128 {
			return "pattern longer than 128 bytes, automaton state would be heap allocated"
		}
		return "short pattern, vectorised substring search (" + simd.CPUFeatures().String() + ")"

	default:
		return "unknown strategy"
	}
}
