package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/processing"
)

// JSONResult represents a replayed script in JSON format.
type JSONResult struct {
	Script               int        `json:"script"`
	Line                 uint       `json:"line,omitempty"`
	StartFEN             string     `json:"startFEN"`
	FinalFEN             string     `json:"finalFEN,omitempty"`
	ToMove               string     `json:"toMove,omitempty"`
	Status               string     `json:"status,omitempty"`
	PlyCount             int        `json:"plyCount"`
	Captures             int        `json:"captures,omitempty"`
	Moves                []JSONMove `json:"moves,omitempty"`
	Board                []string   `json:"board,omitempty"`
	Hash                 string     `json:"hash,omitempty"`
	InsufficientMaterial bool       `json:"insufficientMaterial,omitempty"`
	Duplicate            bool       `json:"duplicate,omitempty"`
	Label                string     `json:"label,omitempty"`
	ErrorPly             int        `json:"errorPly,omitempty"`
	Error                string     `json:"error,omitempty"`
}

// JSONMove represents a ply in JSON format.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Color    string `json:"color"` // "white" or "black"
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a replay result to its JSON form. label, if set,
// names the position pattern the script matched.
func ResultToJSON(r *processing.Result, label string) *JSONResult {
	jr := &JSONResult{
		Script:   r.Num,
		StartFEN: r.StartFEN,
		FinalFEN: r.FinalFEN,
		PlyCount: r.Plies,
		Captures: r.Captures,
		Label:    label,
		ErrorPly: r.ErrorPly,

		InsufficientMaterial: r.InsufficientMaterial,
		Duplicate:            r.Duplicate,
	}
	if r.Script != nil {
		jr.Line = r.Script.Line
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	if r.Final == nil {
		return jr
	}

	jr.ToMove = colorName(r.ToMove)
	jr.Status = r.Status.String()
	jr.Hash = fmt.Sprintf("%016x", r.Hash)
	jr.Board = boardRows(r.Final)

	for i, ply := range r.History {
		m := JSONMove{
			Ply:   i + 1,
			Color: colorName(ply.Piece.Player),
			From:  ply.From.String(),
			To:    ply.To.String(),
			Piece: pieceTypeName(ply.Piece),
		}
		if ply.Captured != chess.NoPiece {
			m.Captured = pieceTypeName(ply.Captured)
		}
		jr.Moves = append(jr.Moves, m)
	}
	return jr
}

// WriteResultJSON writes one result as an indented JSON object.
func WriteResultJSON(w io.Writer, r *processing.Result, label string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ResultToJSON(r, label))
}

// boardRows returns the board as eight strings of FEN letters, eighth rank
// first, with '.' for an empty square.
func boardRows(b *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			p := b.PieceAt(chess.NewTile(rank, file))
			if p == chess.NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// colorName returns the color name for JSON output.
func colorName(p chess.Player) string {
	if p == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lower case name of a piece's kind.
func pieceTypeName(p chess.Piece) string {
	return strings.ToLower(p.Kind.String())
}
