package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/notation"
)

// MustBoard builds a board from a FEN placement (or full FEN) string.
// It calls t.Fatal if the FEN is invalid.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := notation.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// BoardWith builds a board holding only the given pieces, keyed by square name.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for square, piece := range pieces {
		if err := board.SetPieceAt(Tile(t, square), piece); err != nil {
			t.Fatalf("SetPieceAt(%s): %v", square, err)
		}
	}
	return board
}

// Tile parses a square name, calling t.Fatal if it is invalid.
func Tile(t *testing.T, square string) chess.Tile {
	t.Helper()
	tile, err := notation.ParseTile(square)
	if err != nil {
		t.Fatalf("ParseTile(%q): %v", square, err)
	}
	return tile
}

// Tiles parses square names, calling t.Fatal if any is invalid.
func Tiles(t *testing.T, squares ...string) []chess.Tile {
	t.Helper()
	tiles := make([]chess.Tile, 0, len(squares))
	for _, sq := range squares {
		tiles = append(tiles, Tile(t, sq))
	}
	return tiles
}

// SquareNames returns the sorted algebraic names of the tiles.
func SquareNames(tiles []chess.Tile) []string {
	names := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		names = append(names, tile.String())
	}
	sort.Strings(names)
	return names
}

// AssertSameTiles compares two tile sets, ignoring order.
func AssertSameTiles(t *testing.T, got []chess.Tile, want []chess.Tile, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b chess.Tile) bool {
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.File < b.File
	}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		fail(t, "tile set mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// AssertBoardUnchanged fails if the board differs from the saved state.
func AssertBoardUnchanged(t *testing.T, board *chess.Board, before chess.BoardState, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(before, board.SaveState()); diff != "" {
		fail(t, "board changed (-before +after):\n"+diff, msgAndArgs...)
	}
}
