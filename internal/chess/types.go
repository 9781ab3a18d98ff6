// Package chess provides core chess types and board state.
package chess

// Player represents the side that owns a piece.
type Player int

const (
	White Player = iota
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing player.
func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a piece kind owned by a player. The zero value is NoPiece.
// A piece does not know where it stands; its location is wherever the
// Board holds it.
type Piece struct {
	Kind   Kind
	Player Player
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Player: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Player: Black}
}

// IsKing reports whether the piece is a king.
func (p Piece) IsKing() bool {
	return p.Kind == King
}

// String returns e.g. "White Knight", or "Empty" for NoPiece.
func (p Piece) String() string {
	if p.Kind == NoKind {
		return "Empty"
	}
	return p.Player.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Player == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

var (
	whiteGlyphs = [NumKinds]string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
	blackGlyphs = [NumKinds]string{" ", "♟", "♞", "♝", "♜", "♛", "♚"}
)

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	if p.Kind <= NoKind || p.Kind >= NumKinds {
		return " "
	}
	if p.Player == White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	// Rank index 0 is the eighth rank; index 7 is the first rank.
	RankBase = '8'
	ColBase  = 'a'
)

// Start ranks, by rank index.
const (
	WhiteBackRank = 7
	WhitePawnRank = 6
	BlackPawnRank = 1
	BlackBackRank = 0
)

// Forward returns the rank step a pawn of the given player advances by.
func Forward(p Player) int {
	if p == White {
		return -1
	}
	return 1
}

// CheckStatus indicates whether a side is in check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// String returns the string representation of a check status.
func (s CheckStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	default:
		return "none"
	}
}
