package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// ParseTile converts an algebraic square name ("e2") to a tile.
func ParseTile(s string) (chess.Tile, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.Tile{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidTile)
	}
	return chess.NewTile(int(chess.RankBase-s[1]), int(s[0]-chess.ColBase)), nil
}

// MustParseTile is like ParseTile but panics on error. For fixed literals.
func MustParseTile(s string) chess.Tile {
	t, err := ParseTile(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseMove parses a coordinate move. Accepted forms are "e2e4", "e2-e4",
// "e2 e4" and "e4xd5"; trailing check marks ('+', '#') are ignored.
func ParseMove(s string) (from, to chess.Tile, err error) {
	text := strings.TrimRight(strings.TrimSpace(s), "+#!?")
	text = strings.NewReplacer("-", "", "x", "", "X", "", " ", "", "\t", "").Replace(text)

	if len(text) != 4 {
		return chess.Tile{}, chess.Tile{}, fmt.Errorf("move %q: %w", s, errors.ErrParseFailure)
	}
	if from, err = ParseTile(text[:2]); err != nil {
		return chess.Tile{}, chess.Tile{}, fmt.Errorf("move %q: %v: %w", s, err, errors.ErrParseFailure)
	}
	if to, err = ParseTile(text[2:]); err != nil {
		return chess.Tile{}, chess.Tile{}, fmt.Errorf("move %q: %v: %w", s, err, errors.ErrParseFailure)
	}
	return from, to, nil
}

// FormatMove formats a move in coordinate notation, e.g. "e2e4".
func FormatMove(from, to chess.Tile) string {
	return from.String() + to.String()
}
