package engine

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func TestKnightMoves_CenterOfEmptyBoard(t *testing.T) {
	board := chess.NewBoard()
	from := chess.NewTile(4, 4)
	if err := board.SetPieceAt(from, chess.W(chess.Knight)); err != nil {
		t.Fatalf("SetPieceAt: %v", err)
	}

	want := []chess.Tile{
		chess.NewTile(2, 3), chess.NewTile(2, 5),
		chess.NewTile(3, 2), chess.NewTile(3, 6),
		chess.NewTile(5, 2), chess.NewTile(5, 6),
		chess.NewTile(6, 3), chess.NewTile(6, 5),
	}

	got := AllMoves(board, from)
	testutil.AssertEqual(t, got, want, "AllMoves(knight on e4)")
	for _, to := range want {
		testutil.AssertTrue(t, CanMove(board, from, to), "CanMove(e4, %v)", to)
	}
}

func TestPieceGeometry(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		from   string
		want   []string
	}{
		{
			name:   "knight in corner",
			pieces: map[string]chess.Piece{"a1": chess.W(chess.Knight)},
			from:   "a1",
			want:   []string{"b3", "c2"},
		},
		{
			name: "knight jumps over pieces and skips own",
			pieces: map[string]chess.Piece{
				"b1": chess.W(chess.Knight),
				"a2": chess.W(chess.Pawn), "b2": chess.W(chess.Pawn), "c2": chess.W(chess.Pawn),
				"d2": chess.W(chess.Pawn), "c3": chess.B(chess.Pawn),
			},
			from: "b1",
			want: []string{"a3", "c3"},
		},
		{
			name:   "bishop on empty board",
			pieces: map[string]chess.Piece{"c1": chess.W(chess.Bishop)},
			from:   "c1",
			want:   []string{"a3", "b2", "d2", "e3", "f4", "g5", "h6"},
		},
		{
			name: "bishop blocked by own, captures enemy",
			pieces: map[string]chess.Piece{
				"d4": chess.B(chess.Bishop),
				"f6": chess.B(chess.Pawn),
				"b2": chess.W(chess.Pawn),
			},
			from: "d4",
			want: []string{"a7", "b6", "c5", "e5", "c3", "b2", "e3", "f2", "g1"},
		},
		{
			name: "rook stops at first piece",
			pieces: map[string]chess.Piece{
				"d4": chess.W(chess.Rook),
				"d6": chess.B(chess.Knight),
				"d2": chess.W(chess.Pawn),
				"f4": chess.W(chess.King),
			},
			from: "d4",
			want: []string{"d5", "d6", "d3", "a4", "b4", "c4", "e4"},
		},
		{
			name:   "rook on empty board has 14 moves",
			pieces: map[string]chess.Piece{"a1": chess.B(chess.Rook)},
			from:   "a1",
			want: []string{
				"a2", "a3", "a4", "a5", "a6", "a7", "a8",
				"b1", "c1", "d1", "e1", "f1", "g1", "h1",
			},
		},
		{
			name: "queen combines rook and bishop",
			pieces: map[string]chess.Piece{
				"a1": chess.W(chess.Queen),
				"a3": chess.W(chess.Pawn),
				"c1": chess.B(chess.Pawn),
				"c3": chess.B(chess.Pawn),
			},
			from: "a1",
			want: []string{"a2", "b1", "c1", "b2", "c3"},
		},
		{
			name:   "king in center",
			pieces: map[string]chess.Piece{"e4": chess.W(chess.King)},
			from:   "e4",
			want:   []string{"d3", "d4", "d5", "e3", "e5", "f3", "f4", "f5"},
		},
		{
			name: "king next to own and enemy pieces",
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"d1": chess.W(chess.Queen),
				"e2": chess.W(chess.Pawn),
				"f2": chess.B(chess.Pawn),
			},
			from: "e1",
			want: []string{"d2", "f1", "f2"},
		},
		{
			name:   "white pawn on start rank",
			pieces: map[string]chess.Piece{"e2": chess.W(chess.Pawn)},
			from:   "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "black pawn on start rank",
			pieces: map[string]chess.Piece{"d7": chess.B(chess.Pawn)},
			from:   "d7",
			want:   []string{"d6", "d5"},
		},
		{
			name:   "white pawn off start rank",
			pieces: map[string]chess.Piece{"e3": chess.W(chess.Pawn)},
			from:   "e3",
			want:   []string{"e4"},
		},
		{
			name: "pawn blocked directly",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e3": chess.B(chess.Knight),
			},
			from: "e2",
			want: nil,
		},
		{
			name: "pawn double step blocked on far square",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e4": chess.B(chess.Knight),
			},
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "pawn captures diagonally forward only",
			pieces: map[string]chess.Piece{
				"d4": chess.W(chess.Pawn),
				"c5": chess.B(chess.Pawn),
				"e5": chess.W(chess.Pawn),
				"c3": chess.B(chess.Pawn),
				"d5": chess.B(chess.Pawn),
			},
			from: "d4",
			want: []string{"c5"},
		},
		{
			name: "black pawn captures toward rank one",
			pieces: map[string]chess.Piece{
				"e5": chess.B(chess.Pawn),
				"d4": chess.W(chess.Knight),
				"f6": chess.W(chess.Knight),
			},
			from: "e5",
			want: []string{"d4", "e4"},
		},
		{
			name:   "pawn on last rank cannot move",
			pieces: map[string]chess.Piece{"a8": chess.W(chess.Pawn)},
			from:   "a8",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(t, tt.pieces)
			from := testutil.Tile(t, tt.from)

			got := AllMoves(board, from)
			testutil.AssertSameTiles(t, got, testutil.Tiles(t, tt.want...), "AllMoves(%s)", tt.from)
		})
	}
}

func TestCanMove_RejectsDegenerateInput(t *testing.T) {
	board := NewInitialBoard()
	g1 := chess.NewTile(7, 6)

	tests := []struct {
		name     string
		from, to chess.Tile
	}{
		{"same tile", g1, g1},
		{"empty source", chess.NewTile(4, 4), chess.NewTile(3, 4)},
		{"source off board", chess.NewTile(8, 6), chess.NewTile(5, 5)},
		{"destination off board", g1, chess.NewTile(9, 7)},
		{"onto own piece", g1, chess.NewTile(6, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertFalse(t, CanMove(board, tt.from, tt.to), "CanMove(%+v, %+v)", tt.from, tt.to)
		})
	}
}

func TestCanMove_RejectsOutOfRangeKinds(t *testing.T) {
	from, to := chess.NewTile(4, 4), chess.NewTile(3, 4)

	for _, kind := range []chess.Kind{-1, -100, chess.NoKind, chess.NumKinds, chess.NumKinds + 3} {
		for _, player := range []chess.Player{chess.White, chess.Black} {
			board := chess.NewBoard()
			if err := board.SetPieceAt(from, chess.Piece{Kind: kind, Player: player}); err != nil {
				t.Fatal(err)
			}
			testutil.AssertFalse(t, CanMove(board, from, to), "CanMove with kind %d for %v", int(kind), player)
			testutil.AssertEqual(t, len(AllMoves(board, from)), 0, "AllMoves with kind %d", int(kind))
		}
	}
}

func TestAllMoves_EmptyTile(t *testing.T) {
	board := NewInitialBoard()
	if got := AllMoves(board, chess.NewTile(4, 4)); len(got) != 0 {
		t.Errorf("AllMoves(empty e4) = %v; want none", got)
	}
	if got := AllSafeMoves(board, chess.NewTile(-1, 4)); len(got) != 0 {
		t.Errorf("AllSafeMoves(off board) = %v; want none", got)
	}
}

func TestCanMoveOrCapture(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d4": chess.W(chess.Pawn),
		"e5": chess.B(chess.Pawn),
	})
	rook := chess.W(chess.Rook)

	testutil.AssertTrue(t, CanMoveOrCapture(board, rook, testutil.Tile(t, "a1")), "empty tile")
	testutil.AssertTrue(t, CanMoveOrCapture(board, rook, testutil.Tile(t, "e5")), "enemy tile")
	testutil.AssertFalse(t, CanMoveOrCapture(board, rook, testutil.Tile(t, "d4")), "own tile")
	testutil.AssertFalse(t, CanMoveOrCapture(board, rook, chess.NewTile(8, 0)), "off board")
}

func TestInitialPosition_MoveCounts(t *testing.T) {
	board := NewInitialBoard()

	for _, player := range []chess.Player{chess.White, chess.Black} {
		total := 0
		for _, moves := range LegalMoves(board, player) {
			total += len(moves)
		}
		if total != 20 {
			t.Errorf("%v has %d legal moves in the initial position; want 20", player, total)
		}
	}
}
