// Package game holds a chess game session: a board, the side to move and
// the plies played so far. A Game serializes all access to its board, so one
// Game may be shared between goroutines.
package game

import (
	"sync"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/notation"
)

// Ply is one half-move that was played.
type Ply struct {
	From     chess.Tile
	To       chess.Tile
	Piece    chess.Piece // the piece that moved
	Captured chess.Piece // NoPiece unless the move captured
}

// String returns the ply in coordinate form, with an x for captures.
func (p Ply) String() string {
	if p.Captured != chess.NoPiece {
		return p.From.String() + "x" + p.To.String()
	}
	return notation.FormatMove(p.From, p.To)
}

// Game is a game session.
type Game struct {
	mu      sync.Mutex
	board   *chess.Board
	toMove  chess.Player
	history []Ply

	// fullMove is the FEN move number; it goes up after each Black ply.
	fullMove int
}

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from the given position. The board is owned by
// the game afterwards; callers must not touch it.
func WithBoard(b *chess.Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

// WithToMove sets the side to move first.
func WithToMove(p chess.Player) Option {
	return func(g *Game) {
		g.toMove = p
	}
}

// WithFullMove sets the move number of the starting position. Values
// below 1 are ignored.
func WithFullMove(n int) Option {
	return func(g *Game) {
		if n >= 1 {
			g.fullMove = n
		}
	}
}

// New creates a game. Without options it starts from the standard initial
// position with White to move.
func New(opts ...Option) *Game {
	g := &Game{toMove: chess.White, fullMove: 1}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = engine.NewInitialBoard()
	}
	return g
}

// NewFromFEN creates a game from a FEN string, taking the side to move from
// its second field and the move number from its sixth.
func NewFromFEN(fen string) (*Game, error) {
	board, err := notation.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	toMove, err := notation.SideToMove(fen)
	if err != nil {
		return nil, err
	}
	fullMove, err := notation.FullMoveNumber(fen)
	if err != nil {
		return nil, err
	}
	return New(WithBoard(board), WithToMove(toMove), WithFullMove(fullMove)), nil
}

// Play moves the piece on from to to for the side to move.
//
// It fails with ErrGameOver when the side to move has no legal move,
// ErrNotYourTurn when from does not hold one of its pieces, and
// ErrIllegalMove when the rules forbid the move. A failed Play leaves the
// game unchanged.
func (g *Game) Play(from, to chess.Tile) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if engine.IsPlayerInCheckMate(g.board, g.toMove) {
		return errors.Wrapf(errors.ErrGameOver, "%v to move", g.toMove)
	}
	if !g.board.IsOccupiedByPlayer(from, g.toMove) {
		return errors.Wrapf(errors.ErrNotYourTurn, "%s does not hold a %v piece", from, g.toMove)
	}

	piece := g.board.PieceAt(from)
	target := g.board.PieceAt(to)

	if !engine.Move(g.board, from, to) {
		return errors.Wrapf(errors.ErrIllegalMove, "%v %v %s", piece.Player, piece.Kind, notation.FormatMove(from, to))
	}

	ply := Ply{From: from, To: to, Piece: piece}
	if target != chess.NoPiece && g.board.PieceAt(to) != target {
		ply.Captured = target
	}
	g.history = append(g.history, ply)
	if g.toMove == chess.Black {
		g.fullMove++
	}
	g.toMove = g.toMove.Opposite()
	return nil
}

// PlayText parses a coordinate move such as "e2e4" and plays it.
func (g *Game) PlayText(move string) error {
	from, to, err := notation.ParseMove(move)
	if err != nil {
		return err
	}
	return g.Play(from, to)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// History returns a copy of the plies played so far.
func (g *Game) History() []Ply {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Ply, len(g.history))
	copy(out, g.history)
	return out
}

// Status reports the check status of the side to move.
func (g *Game) Status() chess.CheckStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.Status(g.board, g.toMove)
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Copy()
}

// FEN returns the current position in FEN form.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return notation.PositionToFEN(g.board, g.toMove, g.fullMove)
}

// LegalMoves returns the safe destinations of the piece on from.
func (g *Game) LegalMoves(from chess.Tile) []chess.Tile {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.AllSafeMoves(g.board, from)
}

// Captures returns the number of plies that captured a piece.
func (g *Game) Captures() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, p := range g.history {
		if p.Captured != chess.NoPiece {
			n++
		}
	}
	return n
}
