// Package matching selects replayed scripts by what happened in them: the
// final status, the material or positions reached, and the ply count.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/processing"
)

// ResultMatcher is the interface for all result matching implementations.
type ResultMatcher interface {
	// Match returns true if the result matches the matcher's criteria.
	Match(r *processing.Result) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple ResultMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []ResultMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...ResultMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements ResultMatcher.
func (c *CompositeMatcher) Match(r *processing.Result) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	switch c.mode {
	case MatchAll:
		for _, m := range c.matchers {
			if !m.Match(r) {
				return false
			}
		}
		return true
	case MatchAny:
		for _, m := range c.matchers {
			if m.Match(r) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Name implements ResultMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m ResultMatcher) {
	c.matchers = append(c.matchers, m)
}

// Matchers returns the list of matchers in this composite.
func (c *CompositeMatcher) Matchers() []ResultMatcher {
	return c.matchers
}

// Mode returns the match mode (MatchAll or MatchAny).
func (c *CompositeMatcher) Mode() MatchMode {
	return c.mode
}

// eachPosition calls fn with the start position and the position after each
// ply of the result, stopping early when fn returns true. The board passed
// to fn is reused between calls.
func eachPosition(r *processing.Result, fn func(board *chess.Board) bool) bool {
	if r == nil || r.Start == nil {
		return false
	}
	board := r.Start.Copy()
	if fn(board) {
		return true
	}
	for _, ply := range r.History {
		if !engine.Move(board, ply.From, ply.To) {
			return false
		}
		if fn(board) {
			return true
		}
	}
	return false
}
