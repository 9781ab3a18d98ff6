package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/notation"
)

var benchFENPositions = map[string]string{
	"Initial": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board, _ := notation.NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(board, chess.White)
			}
		})
	}
}

func BenchmarkWeakHash(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board, _ := notation.NewBoardFromFEN(benchFENPositions[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				WeakHash(board)
			}
		})
	}
}

func BenchmarkDuplicateDetector_CheckAndAdd(b *testing.B) {
	initialFEN := benchFENPositions["Initial"]

	b.Run("Unique", func(b *testing.B) {
		dd := NewDuplicateDetector(false, 0)
		boards := make([]*chess.Board, chess.BoardSize)
		for i := range boards {
			boards[i], _ = notation.NewBoardFromFEN(initialFEN)
			_ = boards[i].SetPieceAt(chess.NewTile(chess.WhitePawnRank, i), chess.NoPiece)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dd.CheckAndAdd(boards[i%len(boards)], chess.White, i)
		}
	})

	b.Run("Duplicates", func(b *testing.B) {
		dd := NewDuplicateDetector(false, 0)
		board, _ := notation.NewBoardFromFEN(initialFEN)
		dd.CheckAndAdd(board, chess.White, 0)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dd.CheckAndAdd(board, chess.White, 0)
		}
	})
}
