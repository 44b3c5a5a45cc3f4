// File: lexer.go
// Title: Pattern Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of pattern parsing.
//              Converts pattern source text into a lazy, single-pass token
//              stream with one-token lookahead and precise line/column
//              position information for error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Stitch keywords
	TokenCh TokenType = iota
	TokenTch
	TokenSc
	TokenFpsc
	TokenBpsc
	TokenBlsc
	TokenInc
	TokenFlinc
	TokenBlinc
	TokenDec

	// Other keywords
	TokenInMr // "in mr"
	TokenSkip // "skip"

	// Literals
	TokenNumber  // 6, 12
	TokenComment // % free text %

	// Structural symbols
	TokenNewline
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenComma        // ,
)

// Token represents a lexical token with position information.
// Line and Column are 1-based and mark the token's first character.
// Tokens are immutable once produced.
type Token struct {
	Type   TokenType
	Value  string // Token text (comment payload for TokenComment)
	Number uint32 // Parsed value for TokenNumber
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%d)", t.Number)
	case TokenComment:
		return fmt.Sprintf("COMMENT(%s)", t.Value)
	case TokenNewline:
		return "NEWLINE"
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenCh:
		return "CH"
	case TokenTch:
		return "TCH"
	case TokenSc:
		return "SC"
	case TokenFpsc:
		return "FPSC"
	case TokenBpsc:
		return "BPSC"
	case TokenBlsc:
		return "BLSC"
	case TokenInc:
		return "INC"
	case TokenFlinc:
		return "FLINC"
	case TokenBlinc:
		return "BLINC"
	case TokenDec:
		return "DEC"
	case TokenInMr:
		return "IN_MR"
	case TokenSkip:
		return "SKIP"
	case TokenNumber:
		return "NUMBER"
	case TokenComment:
		return "COMMENT"
	case TokenNewline:
		return "NEWLINE"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// keywords is the ordered keyword table. Literals are sorted by
// descending length and tried in order, so a keyword extended by a
// longer alternative ("in mr" vs "inc", "flinc" vs "inc") is never
// shadowed by a shorter one with the same leading characters.
var keywords = []struct {
	literal string
	typ     TokenType
}{
	{"in mr", TokenInMr},
	{"flinc", TokenFlinc},
	{"blinc", TokenBlinc},
	{"fpsc", TokenFpsc},
	{"bpsc", TokenBpsc},
	{"blsc", TokenBlsc},
	{"skip", TokenSkip},
	{"inc", TokenInc},
	{"dec", TokenDec},
	{"tch", TokenTch},
	{"ch", TokenCh},
	{"sc", TokenSc},
}

// symbols maps single structural characters to their token types
var symbols = []struct {
	ch  byte
	typ TokenType
}{
	{'\n', TokenNewline},
	{'[', TokenLeftBracket},
	{']', TokenRightBracket},
	{',', TokenComma},
}

// Lexer performs lexical analysis of pattern source text. It is a lazy,
// single-pass stream with one-token lookahead; re-tokenizing requires a
// fresh Lexer on the original text.
type Lexer struct {
	input    string
	pos      int // Byte offset of the next unconsumed character
	line     int // Line of the next unconsumed character (1-based)
	column   int // Column of the next unconsumed character (1-based)
	peeked   Token
	havePeek bool
}

// NewLexer creates a new lexer for the given source text
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Peek returns the lookahead token without consuming it. The second
// return value is false when no further token can be produced.
func (l *Lexer) Peek() (Token, bool) {
	if !l.havePeek {
		if tok, ok := l.scan(); ok {
			l.peeked = tok
			l.havePeek = true
		}
	}
	return l.peeked, l.havePeek
}

// PeekType returns the lookahead token's type without consuming it
func (l *Lexer) PeekType() (TokenType, bool) {
	tok, ok := l.Peek()
	return tok.Type, ok
}

// Next consumes and returns the next token. The second return value is
// false when no further token can be produced; the remaining input (if
// any) starts with an unrecognized character at CurrentLocation.
func (l *Lexer) Next() (Token, bool) {
	if l.havePeek {
		l.havePeek = false
		return l.peeked, true
	}
	return l.scan()
}

// IsEmpty reports whether the source is fully consumed and no lookahead
// token is buffered
func (l *Lexer) IsEmpty() bool {
	return l.pos >= len(l.input) && !l.havePeek
}

// CurrentLocation returns the position of the buffered lookahead token
// if one exists, otherwise the scanner's current position
func (l *Lexer) CurrentLocation() (line, column int) {
	if l.havePeek {
		return l.peeked.Line, l.peeked.Column
	}
	return l.line, l.column
}

// scan produces the next token from the raw input. Rules are applied in
// priority order: structural symbols, keywords (longest first), integer
// literals, delimited comments. If no rule matches, no input is consumed
// and no token is produced.
func (l *Lexer) scan() (Token, bool) {
	l.skipSpaces()

	if l.pos >= len(l.input) {
		return Token{}, false
	}

	if tok, ok := l.lexSymbol(); ok {
		return tok, true
	}
	if tok, ok := l.lexKeyword(); ok {
		return tok, true
	}
	if tok, ok := l.lexNumber(); ok {
		return tok, true
	}
	if tok, ok := l.lexComment(); ok {
		return tok, true
	}

	return Token{}, false
}

// skipSpaces consumes spaces and tabs, but never newlines
func (l *Lexer) skipSpaces() {
	for l.pos < len(l.input) {
		if ch := l.input[l.pos]; ch == ' ' || ch == '\t' {
			l.nextChar()
		} else {
			break
		}
	}
}

// nextChar consumes one character, advancing the line on newline and
// the column otherwise
func (l *Lexer) nextChar() byte {
	ch := l.input[l.pos]
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
	return ch
}

// makeToken creates a token positioned before any of its characters
// were consumed
func (l *Lexer) makeToken(typ TokenType, value string) Token {
	return Token{
		Type:   typ,
		Value:  value,
		Line:   l.line,
		Column: l.column,
	}
}

// eatString consumes the given literal if the input starts with it
func (l *Lexer) eatString(s string) bool {
	if !strings.HasPrefix(l.input[l.pos:], s) {
		return false
	}
	for range s {
		l.nextChar()
	}
	return true
}

// lexSymbol lexes single-character structural tokens
func (l *Lexer) lexSymbol() (Token, bool) {
	next := l.input[l.pos]
	for _, sym := range symbols {
		if sym.ch == next {
			tok := l.makeToken(sym.typ, string(sym.ch))
			l.nextChar()
			return tok, true
		}
	}
	return Token{}, false
}

// lexKeyword lexes keywords by exact prefix match against the ordered
// keyword table
func (l *Lexer) lexKeyword() (Token, bool) {
	for _, kw := range keywords {
		tok := l.makeToken(kw.typ, kw.literal)
		if l.eatString(kw.literal) {
			return tok, true
		}
	}
	return Token{}, false
}

// lexNumber lexes a maximal run of decimal digits as a non-negative
// integer. A run that does not fit a uint32 produces no token and
// consumes no input, so the literal's start surfaces as a parse error.
func (l *Lexer) lexNumber() (Token, bool) {
	end := l.pos
	for end < len(l.input) && isDigit(l.input[end]) {
		end++
	}
	if end == l.pos {
		return Token{}, false
	}

	digits := l.input[l.pos:end]
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		// Overflow is a recoverable parse failure at the literal start
		return Token{}, false
	}

	tok := l.makeToken(TokenNumber, digits)
	tok.Number = uint32(n)
	for range digits {
		l.nextChar()
	}
	return tok, true
}

// lexComment lexes a %-delimited comment. Without a closing % before the
// end of input, the scan position stays at the opening % and no token is
// produced; the caller sees an unrecognized character there.
func (l *Lexer) lexComment() (Token, bool) {
	if l.input[l.pos] != '%' {
		return Token{}, false
	}

	closing := strings.IndexByte(l.input[l.pos+1:], '%')
	if closing < 0 {
		return Token{}, false
	}

	payload := strings.TrimSpace(l.input[l.pos+1 : l.pos+1+closing])
	tok := l.makeToken(TokenComment, payload)
	// Consume opening %, payload, and closing %
	for i := 0; i < closing+2; i++ {
		l.nextChar()
	}
	return tok, true
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
