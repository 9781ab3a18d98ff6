package output

import (
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
)

// RenderBoard draws the board as a text grid: file letters above and below,
// rank digits on both sides, eighth rank first.
//
//	    A   B   C   D   E   F   G   H
//	  +---+---+---+---+---+---+---+---+
//	8 | ♜ | ♞ | ♝ | ♛ | ♚ | ♝ | ♞ | ♜ | 8
//	  +---+---+---+---+---+---+---+---+
//	...
func RenderBoard(w io.Writer, b *chess.Board, glyphs config.GlyphSet) error {
	_, err := io.WriteString(w, BoardString(b, glyphs))
	return err
}

// BoardString returns the grid drawn by RenderBoard.
func BoardString(b *chess.Board, glyphs config.GlyphSet) string {
	var sb strings.Builder

	writeFileLabels(&sb)
	for rank := 0; rank < chess.BoardSize; rank++ {
		writeSeparator(&sb)
		writeRank(&sb, b, rank, glyphs)
	}
	writeSeparator(&sb)
	writeFileLabels(&sb)

	return sb.String()
}

func writeFileLabels(sb *strings.Builder) {
	sb.WriteString("   ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('A' + file))
		sb.WriteString("  ")
	}
	sb.WriteByte('\n')
}

func writeSeparator(sb *strings.Builder) {
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteString("+---")
	}
	sb.WriteString("+\n")
}

func writeRank(sb *strings.Builder, b *chess.Board, rank int, glyphs config.GlyphSet) {
	label := byte(chess.RankBase - rank)

	sb.WriteByte(label)
	sb.WriteString(" | ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteString(cell(b.PieceAt(chess.NewTile(rank, file)), glyphs))
		sb.WriteString(" | ")
	}
	sb.WriteByte(label)
	sb.WriteByte('\n')
}

// cell returns the one-character drawing of a square's content.
func cell(p chess.Piece, glyphs config.GlyphSet) string {
	if p == chess.NoPiece {
		return " "
	}
	if glyphs == config.ASCIIGlyphs {
		return string(p.Letter())
	}
	return p.Glyph()
}
