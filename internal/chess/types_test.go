package chess

import "testing"

func TestPlayerOpposite(t *testing.T) {
	tests := []struct {
		player Player
		want   Player
	}{
		{White, Black},
		{Black, White},
	}

	for _, tt := range tests {
		t.Run(tt.player.String(), func(t *testing.T) {
			if got := tt.player.Opposite(); got != tt.want {
				t.Errorf("%v.Opposite() = %v; want %v", tt.player, got, tt.want)
			}
			if got := tt.player.Opposite().Opposite(); got != tt.player {
				t.Errorf("%v.Opposite().Opposite() = %v; want %v", tt.player, got, tt.player)
			}
		})
	}
}

func TestTileIsValid(t *testing.T) {
	for rank := -2; rank < BoardSize+2; rank++ {
		for file := -2; file < BoardSize+2; file++ {
			want := rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
			if got := NewTile(rank, file).IsValid(); got != want {
				t.Errorf("NewTile(%d, %d).IsValid() = %v; want %v", rank, file, got, want)
			}
		}
	}
}

func TestTileEqualsAndOffset(t *testing.T) {
	e2 := NewTile(6, 4)

	if !e2.Equals(NewTile(6, 4)) {
		t.Error("e2.Equals(e2) = false")
	}
	if e2.Equals(NewTile(4, 6)) {
		t.Error("e2.Equals(g4) = true; rank and file swapped")
	}

	if got := e2.Offset(-2, 0); got != NewTile(4, 4) {
		t.Errorf("e2.Offset(-2, 0) = %+v; want e4", got)
	}
	if got := NewTile(0, 0).Offset(-1, 0); got.IsValid() {
		t.Errorf("a8.Offset(-1, 0) = %+v should be off the board", got)
	}
}

func TestTileString(t *testing.T) {
	tests := []struct {
		tile Tile
		want string
	}{
		{NewTile(7, 0), "a1"},
		{NewTile(0, 7), "h8"},
		{NewTile(6, 4), "e2"},
		{NewTile(4, 3), "d4"},
		{NewTile(8, 0), "-"},
	}

	for _, tt := range tests {
		if got := tt.tile.String(); got != tt.want {
			t.Errorf("%+v.String() = %q; want %q", tt.tile, got, tt.want)
		}
	}
}

func TestPieceLetterAndGlyph(t *testing.T) {
	tests := []struct {
		piece  Piece
		letter byte
		glyph  string
	}{
		{W(King), 'K', "♔"},
		{B(King), 'k', "♚"},
		{W(Knight), 'N', "♘"},
		{B(Knight), 'n', "♞"},
		{B(Pawn), 'p', "♟"},
		{NoPiece, ' ', " "},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q; want %q", got, tt.letter)
			}
			if got := tt.piece.Glyph(); got != tt.glyph {
				t.Errorf("Glyph() = %q; want %q", got, tt.glyph)
			}
		})
	}
}

func TestPieceIsKing(t *testing.T) {
	for kind := Pawn; kind < NumKinds; kind++ {
		for _, p := range []Piece{W(kind), B(kind)} {
			if got, want := p.IsKing(), kind == King; got != want {
				t.Errorf("%v.IsKing() = %v; want %v", p, got, want)
			}
		}
	}
	if NoPiece.IsKing() {
		t.Error("NoPiece.IsKing() = true")
	}
}

func TestForward(t *testing.T) {
	if got := Forward(White); got != -1 {
		t.Errorf("Forward(White) = %d; want -1", got)
	}
	if got := Forward(Black); got != 1 {
		t.Errorf("Forward(Black) = %d; want 1", got)
	}
}
