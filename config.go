package strcount

import (
	"github.com/coregx/strcount/finder"
	"github.com/coregx/strcount/stream"
)

// MaxBlockSize is the largest accepted block size.
const MaxBlockSize = 64 << 20

// Config controls how a Counter is built.
//
// Example:
//
//	config := strcount.DefaultConfig()
//	config.Strategy = strcount.UseBlockScan
//	config.BlockSize = 64 << 10
//	c, err := strcount.New("needle", config)
type Config struct {
	// Strategy forces a counting strategy. UseAuto lets SelectStrategy
	// decide from the pattern shape.
	// Default: UseAuto
	Strategy Strategy

	// BlockSize is the number of bytes read from the source at a time.
	// The block scan strategy needs BlockSize >= len(pattern).
	// Default: 1024
	BlockSize int

	// Finder selects the substring search used by the block scan strategy.
	// Ignored by the bit-parallel strategy.
	// Default: finder.Auto
	Finder finder.Kind

	// Layout selects the block buffer variant of the block scan strategy.
	// Default: stream.CarryCopy
	Layout stream.Layout
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:  UseAuto,
		BlockSize: 1024,
		Finder:    finder.Auto,
		Layout:    stream.CarryCopy,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - BlockSize: 1 to MaxBlockSize
//   - Strategy, Finder, Layout: one of the declared constants
func (c Config) Validate() error {
	if c.BlockSize < 1 || c.BlockSize > MaxBlockSize {
		return &ConfigError{
			Field:   "BlockSize",
			Message: "must be between 1 and 64 MiB",
		}
	}
	if c.Strategy > UseBlockScan {
		return &ConfigError{
			Field:   "Strategy",
			Message: "unknown strategy " + c.Strategy.String(),
		}
	}
	if !c.Finder.Valid() {
		return &ConfigError{
			Field:   "Finder",
			Message: "unknown finder " + c.Finder.String(),
		}
	}
	if c.Layout != stream.CarryCopy && c.Layout != stream.DoubleBuffer {
		return &ConfigError{
			Field:   "Layout",
			Message: "unknown layout " + c.Layout.String(),
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter or a pattern the
// configuration cannot count.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := "strcount: invalid config: " + e.Field + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
