package engine

import "github.com/lgbarn/chessrules/internal/chess"

// Status reports whether the player is checkmated, in check, or neither.
// Checkmate follows IsPlayerInCheckMate, so a player with no legal move is
// reported as mated even when not in check.
func Status(board *chess.Board, player chess.Player) chess.CheckStatus {
	if IsPlayerInCheckMate(board, player) {
		return chess.Checkmate
	}
	if IsPlayerInCheck(board, player) {
		return chess.Check
	}
	return chess.NoCheck
}
