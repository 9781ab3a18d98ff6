package engine

import "github.com/lgbarn/chessrules/internal/chess"

// canKnightMove: an L shape, never obstructed.
func canKnightMove(board *chess.Board, piece chess.Piece, from, to chess.Tile) bool {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)

	return CanMoveOrCapture(board, piece, to) &&
		((rankDiff == 1 && fileDiff == 2) || (rankDiff == 2 && fileDiff == 1))
}

func canBishopMove(board *chess.Board, piece chess.Piece, from, to chess.Tile) bool {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)
	if rankDiff == 0 || rankDiff != fileDiff {
		return false
	}
	return CanMoveOrCapture(board, piece, to) && isPathClear(board, from, to)
}

func canRookMove(board *chess.Board, piece chess.Piece, from, to chess.Tile) bool {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)
	if (rankDiff == 0) == (fileDiff == 0) {
		return false
	}
	return CanMoveOrCapture(board, piece, to) && isPathClear(board, from, to)
}

func canQueenMove(board *chess.Board, piece chess.Piece, from, to chess.Tile) bool {
	return canBishopMove(board, piece, from, to) || canRookMove(board, piece, from, to)
}

// canKingMove: one step in any direction. No castling.
func canKingMove(board *chess.Board, piece chess.Piece, from, to chess.Tile) bool {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)
	if rankDiff > 1 || fileDiff > 1 || rankDiff+fileDiff == 0 {
		return false
	}
	return CanMoveOrCapture(board, piece, to)
}

// isPathClear checks that every tile strictly between from and to is empty.
// from and to must share a rank, a file or a diagonal.
func isPathClear(board *chess.Board, from, to chess.Tile) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	t := from.Offset(rankDir, fileDir)
	for t != to {
		if board.IsOccupied(t) {
			return false
		}
		t = t.Offset(rankDir, fileDir)
	}

	return true
}
