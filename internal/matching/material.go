package matching

import (
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/processing"
)

// MaterialMatcher matches results by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.Kind]int
	blackPieces map[chess.Kind]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.Kind]int),
		blackPieces: make(map[chess.Kind]int),
	}
	mm.parsePattern(pattern)
	return mm
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) {
	parts := strings.Split(pattern, ":")
	if len(parts) >= 1 {
		parsePieces(parts[0], chess.White, mm.whitePieces)
	}
	if len(parts) >= 2 {
		parsePieces(parts[1], chess.Black, mm.blackPieces)
	}
}

// parsePieces counts the letters of one side's half of a pattern. Letters of
// the wrong case are ignored.
func parsePieces(s string, player chess.Player, counts map[chess.Kind]int) {
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		letter := chess.Piece{Kind: kind, Player: player}.Letter()
		if n := strings.Count(s, string(letter)); n > 0 {
			counts[kind] = n
		}
	}
}

// Match reports whether any position of the result matches the pattern.
func (mm *MaterialMatcher) Match(r *processing.Result) bool {
	return eachPosition(r, mm.matchPosition)
}

// Name implements ResultMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return "Material(=" + mm.pattern + ")"
	}
	return "Material(" + mm.pattern + ")"
}

// matchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) matchPosition(board *chess.Board) bool {
	whiteCounts := engine.CountMaterial(board, chess.White)
	blackCounts := engine.CountMaterial(board, chess.Black)

	if mm.exactMatch {
		return exactMaterialMatch(mm.whitePieces, whiteCounts) &&
			exactMaterialMatch(mm.blackPieces, blackCounts)
	}
	return minimalMaterialMatch(mm.whitePieces, whiteCounts) &&
		minimalMaterialMatch(mm.blackPieces, blackCounts)
}

// exactMaterialMatch checks that a side has exactly the wanted pieces.
// Kings are only compared when the pattern names them.
func exactMaterialMatch(want, have map[chess.Kind]int) bool {
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if kind == chess.King && want[kind] == 0 {
			continue
		}
		if want[kind] != have[kind] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that a side has at least the wanted pieces.
func minimalMaterialMatch(want, have map[chess.Kind]int) bool {
	for kind, count := range want {
		if have[kind] < count {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
