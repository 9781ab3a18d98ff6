package engine

import "github.com/lgbarn/chessrules/internal/chess"

// Move moves the piece on from to to if the move is legal, capturing any
// opposing piece on to. It returns false and leaves the board untouched when
// either tile is invalid, the tiles are equal, from is empty, the piece cannot
// make the move, or the move would leave its owner in check.
func Move(board *chess.Board, from, to chess.Tile) bool {
	if !from.IsValid() || !to.IsValid() || from == to || !board.IsOccupied(from) {
		return false
	}

	if !CanMove(board, from, to) || WouldPutInCheck(board, from, to) {
		return false
	}

	piece := board.PieceAt(from)
	place(board, to, piece)
	place(board, from, chess.NoPiece)
	return true
}
