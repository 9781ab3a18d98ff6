package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsPlayerInCheck returns true if any opposing piece can move onto the
// player's king. Every opposing piece is asked for its full move set.
func IsPlayerInCheck(board *chess.Board, player chess.Player) bool {
	for _, from := range board.Pieces(player.Opposite()) {
		for _, to := range AllMoves(board, from) {
			if board.IsOccupiedByPlayer(to, player) && board.PieceAt(to).IsKing() {
				return true
			}
		}
	}
	return false
}

// IsPlayerInCheckMate returns true if no piece of the player has a safe move.
// A player with no legal move who is not in check is reported as mated too,
// as is a player with no pieces at all.
func IsPlayerInCheckMate(board *chess.Board, player chess.Player) bool {
	for _, from := range board.Pieces(player) {
		if len(AllSafeMoves(board, from)) > 0 {
			return false
		}
	}
	return true
}

// WouldPutInCheck returns true if moving the piece on from to to would leave
// its owner in check. The move is applied to the board for the duration of the
// test; the previous position, including any captured piece, is always
// restored before returning. Invalid tiles or an empty from report false.
//
// The board is mutated while the test runs, so callers sharing a board
// between goroutines must hold a lock across the call.
func WouldPutInCheck(board *chess.Board, from, to chess.Tile) bool {
	if !from.IsValid() || !to.IsValid() || !board.IsOccupied(from) {
		return false
	}

	piece := board.PieceAt(from)

	saved := board.SaveState()
	defer board.RestoreState(saved)

	place(board, to, piece)
	place(board, from, chess.NoPiece)

	return IsPlayerInCheck(board, piece.Player)
}

// place writes a tile that the caller has already validated.
func place(board *chess.Board, t chess.Tile, piece chess.Piece) {
	if err := board.SetPieceAt(t, piece); err != nil {
		panic(err)
	}
}
