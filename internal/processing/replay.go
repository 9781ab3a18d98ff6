// Package processing replays parsed move scripts and collects what happened.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/notation"
	"github.com/lgbarn/chessrules/internal/parser"
)

// Result holds the outcome of replaying one script.
type Result struct {
	Script *parser.Script
	Num    int // 1-based script number in the input

	// Start and final positions; nil only when the start position could not
	// be set up.
	Start    *chess.Board
	Final    *chess.Board
	StartFEN string
	FinalFEN string
	ToMove   chess.Player
	Status   chess.CheckStatus

	History  []game.Ply
	Plies    int
	Captures int

	// Positions holds the Zobrist hash after every ply, starting with the
	// start position.
	Positions []uint64
	Hash      uint64

	InsufficientMaterial bool

	// ErrorPly is the 1-based ply that could not be played, 0 if none.
	ErrorPly int
	Err      error

	// Duplicate is set by the caller when the final position was seen before.
	Duplicate bool
}

// Broken reports whether the replay stopped before the end of the script.
func (r *Result) Broken() bool {
	return r.Err != nil
}

// Mated reports whether the side to move has no legal move.
func (r *Result) Mated() bool {
	return r.Status == chess.Checkmate
}

// Reached reports whether a position with the given hash occurred at any ply.
func (r *Result) Reached(hash uint64) bool {
	for _, h := range r.Positions {
		if h == hash {
			return true
		}
	}
	return false
}

// ReplayScript plays the moves of a script from its start position, stopping
// at the first move that cannot be played. The start position is the
// script's own FEN, else cfg.StartFEN, else the standard initial position.
// num is the script's 1-based number, used in error context.
func ReplayScript(s *parser.Script, num int, cfg *config.Config) *Result {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	result := &Result{Script: s, Num: num, StartFEN: StartFEN(s, cfg)}

	g, err := newGame(s, cfg)
	if err != nil {
		result.Err = &errors.MoveError{
			Err:       err,
			ScriptNum: num,
			File:      cfg.CurrentInputFile,
			Line:      int(s.Line),
		}
		return result
	}

	result.Start = g.Board()
	result.Positions = append(result.Positions, hashing.GenerateZobristHash(result.Start, g.ToMove()))

	for i, move := range s.Moves {
		if err := g.PlayText(move); err != nil {
			result.ErrorPly = i + 1
			result.Err = &errors.MoveError{
				Err:       err,
				ScriptNum: num,
				PlyNum:    i + 1,
				MoveText:  move,
				File:      cfg.CurrentInputFile,
				Line:      int(s.LineOf(i)),
			}
			break
		}
		result.Positions = append(result.Positions, hashing.GenerateZobristHash(g.Board(), g.ToMove()))
	}

	result.Final = g.Board()
	result.FinalFEN = g.FEN()
	result.ToMove = g.ToMove()
	result.Status = g.Status()
	result.History = g.History()
	result.Plies = len(result.History)
	result.Captures = g.Captures()
	result.Hash = result.Positions[len(result.Positions)-1]
	result.InsufficientMaterial = engine.HasInsufficientMaterial(result.Final)
	return result
}

// newGame sets up the start position of a script.
func newGame(s *parser.Script, cfg *config.Config) (*game.Game, error) {
	fen := s.FEN
	if fen == "" {
		fen = cfg.StartFEN
	}
	if fen == "" {
		return game.New(), nil
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return g, nil
}

// ValidateScript replays a script and returns the error that stopped it, or
// nil if every move was played.
func ValidateScript(s *parser.Script, num int, cfg *config.Config) error {
	return ReplayScript(s, num, cfg).Err
}

// Commentary returns one line per ply played, as printed at the highest
// verbosity: "1. White Pawn e2e4", "3. White Pawn e4xd5 takes Black Pawn".
func (r *Result) Commentary() []string {
	lines := make([]string, 0, len(r.History))
	for i, ply := range r.History {
		line := fmt.Sprintf("%d. %v %s", i+1, ply.Piece, ply)
		if ply.Captured != chess.NoPiece {
			line += fmt.Sprintf(" takes %v", ply.Captured)
		}
		lines = append(lines, line)
	}
	return lines
}

// StartFEN returns the FEN the script was replayed from.
func StartFEN(s *parser.Script, cfg *config.Config) string {
	switch {
	case s.FEN != "":
		return s.FEN
	case cfg != nil && cfg.StartFEN != "":
		return cfg.StartFEN
	}
	return notation.InitialFEN
}
