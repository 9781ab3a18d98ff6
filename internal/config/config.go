// Package config provides configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules/internal/errors"
)

// GlyphSet selects how pieces are drawn in board diagrams.
type GlyphSet int

const (
	UnicodeGlyphs GlyphSet = iota // ♔ ♛ ...
	ASCIIGlyphs                   // FEN letters: K q ...
)

// String returns the flag spelling of the glyph set.
func (g GlyphSet) String() string {
	switch g {
	case UnicodeGlyphs:
		return "unicode"
	case ASCIIGlyphs:
		return "ascii"
	default:
		return fmt.Sprintf("GlyphSet(%d)", int(g))
	}
}

// ParseGlyphSet converts a flag value into a GlyphSet.
func ParseGlyphSet(s string) (GlyphSet, error) {
	switch s {
	case "unicode", "":
		return UnicodeGlyphs, nil
	case "ascii":
		return ASCIIGlyphs, nil
	}
	return UnicodeGlyphs, fmt.Errorf("unknown glyph set %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=script count, 2=running commentary

	// StartFEN is the position scripts start from unless they carry their own.
	StartFEN string

	// Workers is the number of replay goroutines; 0 picks runtime.NumCPU.
	Workers int

	// Grouped settings
	Output    *OutputConfig
	Filter    *FilterConfig
	Duplicate *DuplicateConfig

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Filter:     NewFilterConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the main output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Output == nil || c.Filter == nil || c.Duplicate == nil {
		return fmt.Errorf("missing settings group: %w", errors.ErrInvalidConfig)
	}
	if c.Output.Glyphs != UnicodeGlyphs && c.Output.Glyphs != ASCIIGlyphs {
		return fmt.Errorf("glyph set %v: %w", c.Output.Glyphs, errors.ErrInvalidConfig)
	}
	return c.Filter.Validate()
}
