package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

func TestBoardWith(t *testing.T) {
	board := BoardWith(t, map[string]chess.Piece{
		"e1": chess.W(chess.King),
		"e8": chess.B(chess.Rook),
	})

	AssertEqual(t, board.PieceAt(Tile(t, "e1")), chess.W(chess.King))
	AssertEqual(t, board.PieceAt(Tile(t, "e8")), chess.B(chess.Rook))
	AssertEqual(t, len(board.Pieces(chess.White))+len(board.Pieces(chess.Black)), 2)
}

func TestMustBoard(t *testing.T) {
	board := MustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	AssertEqual(t, board.PieceAt(Tile(t, "e8")), chess.B(chess.King))
}

func TestSquareNamesAndSameTiles(t *testing.T) {
	tiles := Tiles(t, "h8", "a1", "d4")
	AssertEqual(t, SquareNames(tiles), []string{"a1", "d4", "h8"})
	AssertSameTiles(t, tiles, Tiles(t, "a1", "d4", "h8"))
	AssertSameTiles(t, nil, []chess.Tile{})
}

func TestAssertBoardUnchanged(t *testing.T) {
	board := chess.NewBoard()
	board.Initialize()
	AssertBoardUnchanged(t, board, board.SaveState())
}
