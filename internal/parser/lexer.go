package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/config"
)

// Lexer tokenizes move script input.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum uint
	eof     bool
	cfg     *config.Config

	// inBrace is set while skipping a {...} comment that spans lines
	inBrace bool
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['#'] = CommentStart
	chTab[';'] = CommentStart
	chTab['%'] = CommentStart
	chTab['{'] = BraceStart
	chTab['}'] = BraceEnd
	chTab['.'] = Dot
	chTab['*'] = Star

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	// Files (a-h, either case) and ranks (1-8)
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
		moveChars[c-32] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}

	// Separators, captures and trailing check/annotation marks
	for _, c := range []byte{'x', 'X', '-', ':', '+', '#', '!', '?'} {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			l.line = line
			l.pos = 0
			l.lineNum++
			return true
		}
		l.eof = true
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			if token.Line == 0 {
				token.Line = l.lineNum
			}
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		return l.startLine()
	}

	if l.inBrace {
		l.skipBrace()
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}

	case CommentStart:
		l.pos = len(l.line)
		return &Token{Type: NoToken}

	case BraceStart:
		l.inBrace = true
		return &Token{Type: NoToken}

	case BraceEnd:
		fmt.Fprintf(l.cfg.LogFile, "Unmatched comment end on line %d.\n", l.lineNum)
		return &Token{Type: NoToken}

	case Dot:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Dot {
			l.advance()
		}
		return &Token{Type: NoToken}

	case Star:
		return l.makeToken(TerminatingResult, "*", symbolStart)

	case Digit:
		return l.gatherNumeric(symbolStart)

	case Alpha:
		return l.gatherMove(symbolStart)

	default:
		fmt.Fprintf(l.cfg.LogFile, "Unknown character %c (0x%x) on line %d.\n", ch, ch, l.lineNum)
		for l.pos < len(l.line) && chTab[l.currentChar()] == ErrorToken {
			l.advance()
		}
		return &Token{Type: NoToken}
	}
}

// startLine reads the next line and classifies it as a whole: blank lines
// separate games and "fen" lines carry a start position. Other lines are
// tokenized symbol by symbol.
func (l *Lexer) startLine() *Token {
	if !l.readLine() {
		return &Token{Type: EOFToken, Line: l.lineNum}
	}

	if l.inBrace {
		return &Token{Type: NoToken}
	}

	trimmed := strings.TrimSpace(l.line)
	if trimmed == "" {
		l.pos = len(l.line)
		return &Token{Type: GameSeparator}
	}

	if fen, ok := fenLine(trimmed); ok {
		column := uint(strings.Index(l.line, fen)) + 1
		l.pos = len(l.line)
		return &Token{Type: FENToken, TokenString: fen, Column: column}
	}

	return &Token{Type: NoToken}
}

// fenLine reports whether the line is a "fen <FEN>" directive and returns
// the FEN text with any trailing comment removed.
func fenLine(trimmed string) (string, bool) {
	if len(trimmed) < 4 || !strings.EqualFold(trimmed[:3], "fen") {
		return "", false
	}
	rest := trimmed[3:]
	if rest[0] == ':' {
		rest = rest[1:]
	} else if !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	if i := strings.IndexAny(rest, "#;"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest), true
}

// skipBrace consumes input up to and including the closing brace.
func (l *Lexer) skipBrace() {
	if i := strings.IndexByte(l.line[l.pos:], '}'); i >= 0 {
		l.pos += i + 1
		l.inBrace = false
		return
	}
	l.pos = len(l.line)
}

// gatherNumeric reads a result (1-0, 0-1, 1/2-1/2) or a move number.
func (l *Lexer) gatherNumeric(symbolStart int) *Token {
	rest := l.line[symbolStart:]
	for _, result := range []string{"1/2-1/2", "1-0", "0-1"} {
		if strings.HasPrefix(rest, result) {
			l.pos = symbolStart + len(result)
			return l.makeToken(TerminatingResult, result, symbolStart)
		}
	}
	return l.gatherMoveNumber(symbolStart)
}

// gatherMoveNumber parses a move number token such as "12." or "3...".
func (l *Lexer) gatherMoveNumber(symbolStart int) *Token {
	for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
		l.advance()
	}
	numStr := l.line[symbolStart:l.pos]

	// Skip trailing dots
	for l.pos < len(l.line) && l.currentChar() == '.' {
		l.advance()
	}

	var moveNum uint
	fmt.Sscanf(numStr, "%d", &moveNum) //nolint:gosec // G104: default 0 is acceptable

	token := l.makeToken(MoveNumber, numStr, symbolStart)
	token.MoveNum = moveNum
	return token
}

// gatherMove reads a move token. Anything up to the next whitespace or
// comment is taken so that malformed moves reach the replay intact and are
// reported there.
func (l *Lexer) gatherMove(symbolStart int) *Token {
	for l.pos < len(l.line) {
		c := l.currentChar()
		if chTab[c] == Whitespace || c == ';' || c == '{' {
			break
		}
		if c == '#' && !moveChars[l.line[l.pos-1]] {
			break
		}
		l.advance()
	}

	text := l.line[symbolStart:l.pos]
	if !moveSeemsValid(text) {
		fmt.Fprintf(l.cfg.LogFile, "Unrecognised move %q on line %d.\n", text, l.lineNum)
	}
	return l.makeToken(MoveToken, text, symbolStart)
}

func (l *Lexer) makeToken(tokenType TokenType, text string, symbolStart int) *Token {
	return &Token{
		Type:        tokenType,
		TokenString: text,
		Line:        l.lineNum,
		Column:      uint(symbolStart) + 1,
	}
}

// moveSeemsValid does a basic check if the move text looks like a
// coordinate move.
func moveSeemsValid(text string) bool {
	squares := 0
	for i := 0; i+1 < len(text); i++ {
		f, r := unicode.ToLower(rune(text[i])), text[i+1]
		if f >= 'a' && f <= 'h' && r >= '1' && r <= '8' {
			squares++
			i++
		}
	}
	return squares == 2
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}
