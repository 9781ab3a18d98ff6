// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chessrules/internal/chess"

// geometryFunc reports whether a piece on from may reach to by its own
// movement rule. Destination occupancy is part of the rule.
type geometryFunc func(board *chess.Board, piece chess.Piece, from, to chess.Tile) bool

// geometry is the movement rule of each piece kind, indexed by chess.Kind.
var geometry = [chess.NumKinds]geometryFunc{
	chess.NoKind: func(*chess.Board, chess.Piece, chess.Tile, chess.Tile) bool { return false },
	chess.Pawn:   canPawnMove,
	chess.Knight: canKnightMove,
	chess.Bishop: canBishopMove,
	chess.Rook:   canRookMove,
	chess.Queen:  canQueenMove,
	chess.King:   canKingMove,
}

// CanMove returns true if the piece on from may move to to under its own
// movement rule. It does not consider whether the move leaves the mover's
// king in check; see WouldPutInCheck.
func CanMove(board *chess.Board, from, to chess.Tile) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}
	piece := board.PieceAt(from)
	if piece.Kind <= chess.NoKind || piece.Kind >= chess.NumKinds {
		return false
	}
	return geometry[piece.Kind](board, piece, from, to)
}

// CanMoveOrCapture returns true if the tile is empty or holds an opposing piece.
func CanMoveOrCapture(board *chess.Board, piece chess.Piece, to chess.Tile) bool {
	return to.IsValid() && !board.IsOccupiedByPlayer(to, piece.Player)
}

// AllMoves returns every tile the piece on from can move to, ignoring
// self-check. An attacker threatens a king whether or not the capture
// would expose its own king, so check detection uses this set.
func AllMoves(board *chess.Board, from chess.Tile) []chess.Tile {
	var moves []chess.Tile
	if !board.IsOccupied(from) {
		return moves
	}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			to := chess.NewTile(rank, file)
			if CanMove(board, from, to) {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

// AllSafeMoves returns the moves from AllMoves that do not leave the mover's
// own king in check.
func AllSafeMoves(board *chess.Board, from chess.Tile) []chess.Tile {
	var safe []chess.Tile
	for _, to := range AllMoves(board, from) {
		if !WouldPutInCheck(board, from, to) {
			safe = append(safe, to)
		}
	}
	return safe
}
