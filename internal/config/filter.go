package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules/internal/errors"
)

// FilterConfig holds settings that select which replayed scripts are output.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool
	LowerPlyBound  uint
	UpperPlyBound  uint

	// Match conditions on the final position
	MatchCheckmate    bool
	MatchCheck        bool
	MatchInsufficient bool

	// MaterialPattern such as "QR:qrr" selects scripts that reach a position
	// with at least (or, with ExactMaterial, exactly) that material.
	MaterialPattern string
	ExactMaterial   bool

	// PositionPatterns are FENs or FEN patterns with wildcards; a script
	// matches if it reaches any of them.
	PositionPatterns []string
	InvertPatterns   bool

	// KeepBrokenScripts outputs scripts that stopped at an illegal move
	KeepBrokenScripts bool

	// StopOnError aborts the whole run at the first broken script
	StopOnError bool
}

// NewFilterConfig creates a FilterConfig with default values.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{KeepBrokenScripts: true}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.LowerPlyBound > f.UpperPlyBound {
		return fmt.Errorf("lower ply bound (%d) > upper ply bound (%d): %w",
			f.LowerPlyBound, f.UpperPlyBound, errors.ErrInvalidConfig)
	}
	if f.MaterialPattern != "" {
		if strings.Count(f.MaterialPattern, ":") > 1 ||
			strings.Trim(f.MaterialPattern, "KQRBNPkqrbnp:") != "" {
			return fmt.Errorf("material pattern %q: %w", f.MaterialPattern, errors.ErrInvalidConfig)
		}
	}
	return nil
}
