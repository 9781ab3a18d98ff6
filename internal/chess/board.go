package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Board is the 8x8 grid of squares, indexed [rank][file]. Each square holds at
// most one piece; NoPiece marks an empty square.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// backRank is the order of pieces along both back ranks, file a to file h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			b.squares[rank][file] = NoPiece
		}
	}
}

// Initialize clears the board and sets up the standard starting position.
func (b *Board) Initialize() {
	b.Clear()

	for file := 0; file < BoardSize; file++ {
		b.squares[BlackBackRank][file] = B(backRank[file])
		b.squares[BlackPawnRank][file] = B(Pawn)
		b.squares[WhitePawnRank][file] = W(Pawn)
		b.squares[WhiteBackRank][file] = W(backRank[file])
	}
}

// PieceAt returns the piece on the tile, or NoPiece if the tile is empty
// or off the board.
func (b *Board) PieceAt(t Tile) Piece {
	if !t.IsValid() {
		return NoPiece
	}
	return b.squares[t.Rank][t.File]
}

// SetPieceAt places a piece on the tile; NoPiece empties it.
// Writing to an invalid tile is a caller bug and returns ErrInvalidTile.
func (b *Board) SetPieceAt(t Tile, piece Piece) error {
	if !t.IsValid() {
		return fmt.Errorf("set piece at (%d, %d): %w", t.Rank, t.File, errors.ErrInvalidTile)
	}
	b.squares[t.Rank][t.File] = piece
	return nil
}

// IsOccupied returns true if a piece stands on the tile.
func (b *Board) IsOccupied(t Tile) bool {
	return b.PieceAt(t) != NoPiece
}

// IsOccupiedByPlayer returns true if a piece of the given player stands on the tile.
func (b *Board) IsOccupiedByPlayer(t Tile, player Player) bool {
	p := b.PieceAt(t)
	return p != NoPiece && p.Player == player
}

// Pieces returns the tiles occupied by the player, rank by rank.
func (b *Board) Pieces(player Player) []Tile {
	var tiles []Tile
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			t := NewTile(rank, file)
			if b.IsOccupiedByPlayer(t, player) {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

// FindKing returns the tile of the player's king.
func (b *Board) FindKing(player Player) (Tile, bool) {
	king := Piece{Kind: King, Player: player}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.squares[rank][file] == king {
				return NewTile(rank, file), true
			}
		}
	}
	return Tile{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures the squares for save/restore operations.
// This is cheaper than Copy() when the board is modified temporarily
// and then put back (e.g., testing whether a move exposes the king).
type BoardState struct {
	Squares [BoardSize][BoardSize]Piece
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Squares: b.squares}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.squares = s.Squares
}
