package engine

import "github.com/lgbarn/chessrules/internal/chess"

// canPawnMove checks pawn movement: one step forward onto an empty tile, two
// steps forward from the start rank through empty tiles, or one step
// diagonally forward onto an opposing piece. No en passant or promotion.
func canPawnMove(board *chess.Board, piece chess.Piece, from, to chess.Tile) bool {
	dir := chess.Forward(piece.Player)
	rankStep := to.Rank - from.Rank
	fileDiff := abs(to.File - from.File)

	switch {
	case fileDiff == 0 && rankStep == dir:
		return !board.IsOccupied(to)

	case fileDiff == 0 && rankStep == 2*dir:
		if from.Rank != pawnStartRank(piece.Player) {
			return false
		}
		return !board.IsOccupied(from.Offset(dir, 0)) && !board.IsOccupied(to)

	case fileDiff == 1 && rankStep == dir:
		return board.IsOccupiedByPlayer(to, piece.Player.Opposite())
	}

	return false
}

// pawnStartRank returns the rank index pawns of the player start on.
func pawnStartRank(player chess.Player) int {
	if player == chess.White {
		return chess.WhitePawnRank
	}
	return chess.BlackPawnRank
}
