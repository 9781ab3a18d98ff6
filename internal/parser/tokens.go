// Package parser reads move scripts: plain text files of coordinate moves,
// one game per blank-line separated block.
//
//	# Scholar's mate
//	fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1
//	1. e2e4 e7e5
//	2. f1c4 b8c6
//	3. d1h5 g8f6
//	4. h5xf7# 1-0
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	FENToken
	MoveToken
	MoveNumber
	TerminatingResult
	GameSeparator

	// Internal tokens used for identification
	Whitespace
	CommentStart
	BraceStart
	BraceEnd
	Dot
	Alpha
	Digit
	Star
	NoToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	FENToken:          "FEN",
	MoveToken:         "MOVE",
	MoveNumber:        "MOVE_NUMBER",
	TerminatingResult: "TERMINATING_RESULT",
	GameSeparator:     "GAME_SEPARATOR",
	Whitespace:        "WHITESPACE",
	CommentStart:      "COMMENT_START",
	BraceStart:        "BRACE_START",
	BraceEnd:          "BRACE_END",
	Dot:               "DOT",
	Alpha:             "ALPHA",
	Digit:             "DIGIT",
	Star:              "STAR",
	NoToken:           "NO_TOKEN",
	ErrorToken:        "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// TokenString holds move text, results and FEN strings
	TokenString string

	// MoveNum holds move numbers
	MoveNum uint

	// Line and column for error reporting
	Line   uint
	Column uint
}

// NewToken creates a new token of the given type.
func NewToken(tokenType TokenType) *Token {
	return &Token{Type: tokenType}
}
