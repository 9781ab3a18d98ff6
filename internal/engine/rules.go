package engine

import "github.com/lgbarn/chessrules/internal/chess"

// standardMaterial is the piece count each side starts with.
var standardMaterial = map[chess.Kind]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.Initialize()
	return board
}

// CountMaterial counts the player's pieces by kind.
func CountMaterial(board *chess.Board, player chess.Player) map[chess.Kind]int {
	counts := make(map[chess.Kind]int)
	for _, t := range board.Pieces(player) {
		counts[board.PieceAt(t).Kind]++
	}
	return counts
}

// IsStandardMaterial checks if both sides have exactly the starting material.
func IsStandardMaterial(board *chess.Board) bool {
	for _, player := range []chess.Player{chess.White, chess.Black} {
		counts := CountMaterial(board, player)
		if len(counts) != len(standardMaterial) {
			return false
		}
		for kind, expected := range standardMaterial {
			if counts[kind] != expected {
				return false
			}
		}
	}
	return true
}

// HasInsufficientMaterial reports whether neither side can possibly mate:
// bare kings, a single minor piece against a bare king, or one bishop each
// on squares of the same colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Kind
	var bishopOnLight [2]bool

	for _, player := range []chess.Player{chess.White, chess.Black} {
		for _, t := range board.Pieces(player) {
			kind := board.PieceAt(t).Kind
			switch kind {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Bishop:
				bishopOnLight[player] = isLightSquare(t)
			}
			minors[player] = append(minors[player], kind)
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare reports the square colour; a1 is dark.
func isLightSquare(t chess.Tile) bool {
	return (t.Rank+t.File)%2 == 0
}
