package matching

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/processing"
)

// StatusMatcher matches results whose side to move ends in the given status.
// Checkmate includes positions where the side to move has no legal move at
// all.
type StatusMatcher struct {
	status chess.CheckStatus
}

// NewStatusMatcher creates a matcher for the final check status.
func NewStatusMatcher(status chess.CheckStatus) *StatusMatcher {
	return &StatusMatcher{status: status}
}

// Match implements ResultMatcher.
func (m *StatusMatcher) Match(r *processing.Result) bool {
	return r.Final != nil && r.Status == m.status
}

// Name implements ResultMatcher.
func (m *StatusMatcher) Name() string {
	return "Status(" + m.status.String() + ")"
}

// PlyRangeMatcher matches results whose played ply count lies in [lower, upper].
type PlyRangeMatcher struct {
	lower, upper int
}

// NewPlyRangeMatcher creates a ply count matcher.
func NewPlyRangeMatcher(lower, upper uint) *PlyRangeMatcher {
	return &PlyRangeMatcher{lower: int(lower), upper: int(upper)}
}

// Match implements ResultMatcher.
func (m *PlyRangeMatcher) Match(r *processing.Result) bool {
	return r.Plies >= m.lower && r.Plies <= m.upper
}

// Name implements ResultMatcher.
func (m *PlyRangeMatcher) Name() string {
	return fmt.Sprintf("Plies(%d-%d)", m.lower, m.upper)
}

// CompleteMatcher matches results that replayed every move of their script.
type CompleteMatcher struct{}

// Match implements ResultMatcher.
func (CompleteMatcher) Match(r *processing.Result) bool {
	return !r.Broken()
}

// Name implements ResultMatcher.
func (CompleteMatcher) Name() string {
	return "Complete"
}

// InsufficientMaterialMatcher matches results that end with neither side
// able to mate.
type InsufficientMaterialMatcher struct{}

// Match implements ResultMatcher.
func (InsufficientMaterialMatcher) Match(r *processing.Result) bool {
	return r.Final != nil && r.InsufficientMaterial
}

// Name implements ResultMatcher.
func (InsufficientMaterialMatcher) Name() string {
	return "InsufficientMaterial"
}
