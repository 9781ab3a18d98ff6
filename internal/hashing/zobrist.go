package hashing

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/lgbarn/chessrules/internal/chess"
)

// Zobrist keys, one per (square, player, kind), plus one for Black to move.
// The generator is seeded with constants so hashes are stable between runs
// and can be compared across output files.
var (
	pieceKeys   [chess.BoardSize][chess.BoardSize][2][chess.NumKinds]uint64
	blackToMove uint64
)

func init() {
	rng := rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9))
	for rank := range pieceKeys {
		for file := range pieceKeys[rank] {
			for player := range pieceKeys[rank][file] {
				for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
					pieceKeys[rank][file][player][kind] = rng.Uint64()
				}
			}
		}
	}
	blackToMove = rng.Uint64()
}

// GenerateZobristHash returns the Zobrist hash of the position.
func GenerateZobristHash(board *chess.Board, toMove chess.Player) uint64 {
	var hash uint64
	for _, player := range []chess.Player{chess.White, chess.Black} {
		for _, t := range board.Pieces(player) {
			hash ^= pieceKeys[t.Rank][t.File][player][board.PieceAt(t).Kind]
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash returns an FNV-1a hash of the piece placement. It is independent
// of the Zobrist keys and is used to tell apart the rare Zobrist collision.
func WeakHash(board *chess.Board) uint32 {
	h := fnv.New32a()
	state := board.SaveState()
	buf := make([]byte, 0, chess.BoardSize*chess.BoardSize)
	for rank := range state.Squares {
		for _, piece := range state.Squares[rank] {
			buf = append(buf, piece.Letter())
		}
	}
	h.Write(buf) //nolint:errcheck // hash.Hash writes never fail
	return h.Sum32()
}
