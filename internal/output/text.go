// Package output writes replay results as text reports or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/processing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error, if any.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WriteResultText writes a text report of one replayed script:
//
//	Script 2 (line 4): 4 plies, White to move, checkmate
//	f2f3 e7e5 g2g4 d8h4
//	<board>
//
// label, if set, names the position pattern the script matched.
func WriteResultText(w io.Writer, r *processing.Result, oc *config.OutputConfig, label string) error {
	ow := NewOutputWriter(w, 0)

	ow.WriteNoSpace(headline(r))
	if label != "" {
		ow.WriteNoSpace(fmt.Sprintf(" [%s]", label))
	}
	ow.NewLine()

	if r.Err != nil {
		ow.WriteNoSpace("Stopped: " + r.Err.Error())
		ow.NewLine()
	}

	if oc.ShowMoves && len(r.History) > 0 {
		for i, ply := range r.History {
			if i%2 == 0 {
				ow.Write(fmt.Sprintf("%d.", i/2+1))
			}
			ow.Write(ply.String())
		}
		ow.NewLine()
	}

	if oc.ShowFEN && r.FinalFEN != "" {
		ow.WriteNoSpace(r.FinalFEN)
		ow.NewLine()
	}

	if oc.ShowBoard && r.Final != nil {
		ow.WriteNoSpace(BoardString(r.Final, oc.Glyphs))
	}

	ow.NewLine()
	return ow.Err()
}

// headline summarises a result on one line.
func headline(r *processing.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Script %d", r.Num)
	if r.Script != nil && r.Script.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", r.Script.Line)
	}
	fmt.Fprintf(&sb, ": %d %s", r.Plies, plural(r.Plies, "ply", "plies"))
	if r.Final == nil {
		return sb.String()
	}

	fmt.Fprintf(&sb, ", %v to move", r.ToMove)
	if r.Status != chess.NoCheck {
		fmt.Fprintf(&sb, ", %v", r.Status)
	}
	if r.Captures > 0 {
		fmt.Fprintf(&sb, ", %d %s", r.Captures, plural(r.Captures, "capture", "captures"))
	}
	if r.InsufficientMaterial {
		sb.WriteString(", insufficient material")
	}
	if r.Duplicate {
		sb.WriteString(", duplicate")
	}
	return sb.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
