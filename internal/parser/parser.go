package parser

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/notation"
)

// Script is one game of a move script.
type Script struct {
	// FEN is the start position; empty means the configured default.
	FEN string

	// Moves holds the move texts in the order they are to be played.
	Moves []string

	// MoveLines holds the input line of each move.
	MoveLines []uint

	// Result is the terminating result token, if any.
	Result string

	// Line numbers of the start and end of the script in the input file.
	Line    uint
	EndLine uint
}

// PlyCount returns the number of moves in the script.
func (s *Script) PlyCount() int {
	return len(s.Moves)
}

// LineOf returns the input line of the i'th move, or the script's first
// line if it is not known.
func (s *Script) LineOf(i int) uint {
	if i >= 0 && i < len(s.MoveLines) {
		return s.MoveLines[i]
	}
	return s.Line
}

// Parser parses move script input into Scripts.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	cfg          *config.Config
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseScript parses a single script from the input.
// Returns nil if no more scripts are available.
func (p *Parser) ParseScript() (*Script, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	p.skipSeparators()
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	script := &Script{Line: p.currentToken.Line}

	if p.currentToken.Type == FENToken {
		fenToken := p.currentToken
		p.nextToken()
		if err := p.checkFEN(fenToken); err != nil {
			p.skipScript()
			return nil, err
		}
		script.FEN = fenToken.TokenString
	}

	p.parseMoveList(script)
	script.EndLine = p.lexer.LineNumber()

	return script, nil
}

// skipSeparators skips blank lines between scripts.
func (p *Parser) skipSeparators() {
	for p.currentToken.Type == GameSeparator {
		p.nextToken()
	}
}

// skipScript discards tokens up to the end of the current script.
func (p *Parser) skipScript() {
	for {
		switch p.currentToken.Type {
		case EOFToken, GameSeparator, FENToken:
			return
		default:
			p.nextToken()
		}
	}
}

// checkFEN validates the position on a fen line.
func (p *Parser) checkFEN(token *Token) error {
	if _, err := notation.NewBoardFromFEN(token.TokenString); err != nil {
		return &errors.ParseError{
			Err:      err,
			File:     p.cfg.CurrentInputFile,
			Line:     int(token.Line),
			Column:   int(token.Column),
			Expected: "FEN position",
			Got:      fmt.Sprintf("%q", token.TokenString),
		}
	}
	return nil
}

// parseMoveList collects moves up to a blank line, a result, the next fen
// line or the end of input.
func (p *Parser) parseMoveList(script *Script) {
	for {
		switch p.currentToken.Type {
		case MoveNumber:
			p.nextToken()

		case MoveToken:
			script.Moves = append(script.Moves, p.currentToken.TokenString)
			script.MoveLines = append(script.MoveLines, p.currentToken.Line)
			p.nextToken()

		case TerminatingResult:
			script.Result = p.currentToken.TokenString
			p.nextToken()
			p.parseTrailing()
			return

		case GameSeparator:
			p.nextToken()
			return

		default:
			// EOFToken, or a FENToken starting the next script
			return
		}
	}
}

// parseTrailing reports anything but a separator between a result and the
// next script.
func (p *Parser) parseTrailing() {
	for {
		switch p.currentToken.Type {
		case EOFToken, GameSeparator, FENToken:
			return
		default:
			fmt.Fprintf(p.cfg.LogFile, "Ignoring %s %q after result on line %d.\n",
				p.currentToken.Type, p.currentToken.TokenString, p.currentToken.Line)
			p.nextToken()
		}
	}
}

// ParseAllScripts parses all scripts from the input. Parsing stops at the
// first malformed fen line; the scripts read before it are returned along
// with the error.
func (p *Parser) ParseAllScripts() ([]*Script, error) {
	scripts := make([]*Script, 0, 16)

	for {
		script, err := p.ParseScript()
		if err != nil {
			return scripts, err
		}
		if script == nil {
			break
		}
		scripts = append(scripts, script)
	}

	return scripts, nil
}
