package engine

import "github.com/lgbarn/chessrules/internal/chess"

// HasLegalMoves returns true if the given player has at least one safe move.
func HasLegalMoves(board *chess.Board, player chess.Player) bool {
	return !IsPlayerInCheckMate(board, player)
}

// LegalMoves returns every safe move of the player, keyed by source tile.
// Pieces without a safe move are left out.
func LegalMoves(board *chess.Board, player chess.Player) map[chess.Tile][]chess.Tile {
	moves := make(map[chess.Tile][]chess.Tile)
	for _, from := range board.Pieces(player) {
		if safe := AllSafeMoves(board, from); len(safe) > 0 {
			moves[from] = safe
		}
	}
	return moves
}
