package engine

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "5b2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "5b2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N vs K+N", "4k1n1/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"standard starting position", "", false}, // empty fen means use initial board
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var board *chess.Board
			if tt.fen == "" {
				board = NewInitialBoard()
			} else {
				board = testutil.MustBoard(t, tt.fen)
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()

	testutil.AssertEqual(t, board.PieceAt(chess.NewTile(7, 4)), chess.W(chess.King), "e1")
	testutil.AssertEqual(t, board.PieceAt(chess.NewTile(0, 3)), chess.B(chess.Queen), "d8")
	testutil.AssertEqual(t, board.PieceAt(chess.NewTile(6, 0)), chess.W(chess.Pawn), "a2")
	testutil.AssertEqual(t, board.PieceAt(chess.NewTile(4, 4)), chess.NoPiece, "e4")

	fromFEN := testutil.MustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	testutil.AssertEqual(t, board.SaveState(), fromFEN.SaveState(), "initial board vs FEN")
}

func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		square string
		want   bool
	}{
		{"a1", false},
		{"h1", true},
		{"a8", true},
		{"h8", false},
		{"e4", true},
		{"d4", false},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := isLightSquare(testutil.Tile(t, tt.square)); got != tt.want {
				t.Errorf("isLightSquare(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
}

func TestCountMaterial(t *testing.T) {
	board := testutil.MustBoard(t, "4k3/pp6/8/8/8/8/3Q4/4K1N1 w - - 0 1")

	testutil.AssertEqual(t, CountMaterial(board, chess.White),
		map[chess.Kind]int{chess.King: 1, chess.Queen: 1, chess.Knight: 1})
	testutil.AssertEqual(t, CountMaterial(board, chess.Black),
		map[chess.Kind]int{chess.King: 1, chess.Pawn: 2})
	testutil.AssertEqual(t, CountMaterial(chess.NewBoard(), chess.White), map[chess.Kind]int{})
}

func TestIsStandardMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", true},
		{"pieces rearranged", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1", true},
		{"queen odds", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w - - 0 1", false},
		{"extra queen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNQ w - - 0 1", false},
		{"empty", "8/8/8/8/8/8/8/8 w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStandardMaterial(testutil.MustBoard(t, tt.fen)); got != tt.want {
				t.Errorf("IsStandardMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}
