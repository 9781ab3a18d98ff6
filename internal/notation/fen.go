// Package notation converts between board state and its text forms:
// algebraic tile names, coordinate moves and FEN piece placement.
package notation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c rune) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece placement
// field is applied to the board; see SideToMove and FullMoveNumber for the
// second and sixth fields. Castling, en passant and the halfmove clock are
// accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if _, err := SideToMove(fen); err != nil {
		return nil, err
	}
	if _, err := FullMoveNumber(fen); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for rank, row := range rows {
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := ConvertFENCharToKind(c)
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
				}

				player := chess.White
				if unicode.IsLower(c) {
					player = chess.Black
				}

				if err := board.SetPieceAt(chess.NewTile(rank, file), chess.Piece{Kind: kind, Player: player}); err != nil {
					return fmt.Errorf("rank %c overflows: %w", byte(chess.RankBase-rank), errors.ErrInvalidFEN)
				}
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %c has %d files: %w", byte(chess.RankBase-rank), file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// SideToMove returns the player named by the second FEN field.
// A FEN with only the placement field defaults to White.
func SideToMove(fen string) (chess.Player, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// FullMoveNumber returns the move number in the sixth FEN field. A FEN
// without one defaults to 1.
func FullMoveNumber(fen string) (int, error) {
	parts := strings.Fields(fen)
	if len(parts) < 6 {
		return 1, nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return 1, fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	return n, nil
}

// BoardToFEN converts the board to the FEN piece placement field.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// PositionToFEN converts the board and side to move to a full FEN string.
// Castling and en passant are always "-" as neither is supported.
func PositionToFEN(board *chess.Board, toMove chess.Player, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	if toMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	fmt.Fprintf(&sb, " - - 0 %d", moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.NewTile(rank, file))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
