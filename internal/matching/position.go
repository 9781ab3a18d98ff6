package matching

import (
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/notation"
	"github.com/lgbarn/chessrules/internal/processing"
)

// FENPattern represents a FEN pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern       string
	Label         string // optional label for matched position
	IsExact       bool   // true if this is an exact FEN (no wildcards)
	IncludeInvert bool   // also match color-inverted position
	ranks         []string
}

// PositionMatcher matches results that pass through given positions.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// IsPattern reports whether s uses pattern wildcards rather than being a
// plain FEN.
func IsPattern(s string) bool {
	placement, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	return strings.ContainsAny(placement, "?!*Aa_")
}

// AddFEN adds an exact FEN position to match. Without a side to move field
// the position matches with either side to move.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	board, err := notation.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		IsExact: true,
	}
	pm.patterns = append(pm.patterns, pattern)

	if len(strings.Fields(fen)) >= 2 {
		toMove, _ := notation.SideToMove(fen)
		pm.exactHashes[hashing.GenerateZobristHash(board, toMove)] = pattern
		return nil
	}
	pm.exactHashes[hashing.GenerateZobristHash(board, chess.White)] = pattern
	pm.exactHashes[hashing.GenerateZobristHash(board, chess.Black)] = pattern
	return nil
}

// AddPattern adds a FEN pattern with wildcards.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) {
	placement, _, _ := strings.Cut(strings.TrimSpace(pattern), " ")
	p := &FENPattern{
		Pattern:       placement,
		Label:         label,
		IsExact:       false,
		IncludeInvert: includeInvert,
		ranks:         strings.Split(placement, "/"),
	}
	pm.patterns = append(pm.patterns, p)

	if includeInvert {
		inverted := invertPattern(placement)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
}

// Add adds s as an exact FEN or, if it has wildcards, as a pattern.
func (pm *PositionMatcher) Add(s string, includeInvert bool) error {
	if IsPattern(s) {
		pm.AddPattern(s, "", includeInvert)
		return nil
	}
	return pm.AddFEN(s, "")
}

// MatchResult checks if any position of the result matches. It returns the
// matching pattern (with label) or nil.
func (pm *PositionMatcher) MatchResult(r *processing.Result) *FENPattern {
	if len(pm.patterns) == 0 || r == nil {
		return nil
	}

	// Exact positions go by hash.
	for _, h := range r.Positions {
		if pattern, ok := pm.exactHashes[h]; ok {
			return pattern
		}
	}

	var match *FENPattern
	eachPosition(r, func(board *chess.Board) bool {
		match = pm.matchPosition(board)
		return match != nil
	})
	return match
}

// Match implements ResultMatcher.
func (pm *PositionMatcher) Match(r *processing.Result) bool {
	return pm.MatchResult(r) != nil
}

// Name implements ResultMatcher.
func (pm *PositionMatcher) Name() string {
	return "Position"
}

// matchPosition checks if a position matches any wildcard pattern.
func (pm *PositionMatcher) matchPosition(board *chess.Board) *FENPattern {
	var boardRanks [chess.BoardSize]string
	haveRanks := false

	for _, pattern := range pm.patterns {
		if pattern.IsExact {
			continue
		}
		if !haveRanks {
			boardRanks = boardToRanks(board)
			haveRanks = true
		}
		if matchPattern(boardRanks, pattern) {
			return pattern
		}
	}
	return nil
}

// matchPattern checks if board ranks match a FEN pattern with wildcards.
func matchPattern(boardRanks [chess.BoardSize]string, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}

	for i, patternRank := range pattern.ranks {
		if i >= chess.BoardSize {
			break
		}
		if !matchRank(boardRanks[i], patternRank) {
			return false
		}
	}

	return true
}

// boardToRanks converts a board to rank strings, eighth rank first, with
// '_' for empty squares.
func boardToRanks(board *chess.Board) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string

	for rank := 0; rank < chess.BoardSize; rank++ {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(pieceToChar(board.PieceAt(chess.NewTile(rank, file))))
		}
		ranks[rank] = sb.String()
	}

	return ranks
}

// pieceToChar converts a piece to its FEN character, '_' for none.
func pieceToChar(piece chess.Piece) byte {
	if piece == chess.NoPiece {
		return '_'
	}
	return piece.Letter()
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			// * matches zero or more of anything
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			// Try matching rest of pattern at each position
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '_':
			if boardRank[bi] != '_' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			// Number means N empty squares
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours and reverses rank order in a FEN pattern.
// The A/a wildcards swap along with the piece letters.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32)
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32)
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}

	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
