// File: lexer_test.go
// Title: Pattern Lexer Unit Tests
// Description: Tests for the pattern tokenizer covering keyword ordering,
//              position tracking, comment delimiting and rollback, integer
//              parsing including overflow, and lookahead behavior.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lexer tests

package parser

import (
	"testing"
)

// collect drains the lexer into a token slice
func collect(l *Lexer) []Token {
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestLexerTokenPositions(t *testing.T) {
	src := "sc 6\ninc 6\nsc 2, [sc, inc] 5"

	expected := []Token{
		{Type: TokenSc, Value: "sc", Line: 1, Column: 1},
		{Type: TokenNumber, Value: "6", Number: 6, Line: 1, Column: 4},
		{Type: TokenNewline, Value: "\n", Line: 1, Column: 5},
		{Type: TokenInc, Value: "inc", Line: 2, Column: 1},
		{Type: TokenNumber, Value: "6", Number: 6, Line: 2, Column: 5},
		{Type: TokenNewline, Value: "\n", Line: 2, Column: 6},
		{Type: TokenSc, Value: "sc", Line: 3, Column: 1},
		{Type: TokenNumber, Value: "2", Number: 2, Line: 3, Column: 4},
		{Type: TokenComma, Value: ",", Line: 3, Column: 5},
		{Type: TokenLeftBracket, Value: "[", Line: 3, Column: 7},
		{Type: TokenSc, Value: "sc", Line: 3, Column: 8},
		{Type: TokenComma, Value: ",", Line: 3, Column: 10},
		{Type: TokenInc, Value: "inc", Line: 3, Column: 12},
		{Type: TokenRightBracket, Value: "]", Line: 3, Column: 15},
		{Type: TokenNumber, Value: "5", Number: 5, Line: 3, Column: 17},
	}

	got := collect(NewLexer(src))
	if len(got) != len(expected) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(expected), got)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("token %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{"all stitch keywords", "ch tch sc fpsc bpsc blsc inc flinc blinc dec",
			[]TokenType{TokenCh, TokenTch, TokenSc, TokenFpsc, TokenBpsc, TokenBlsc, TokenInc, TokenFlinc, TokenBlinc, TokenDec}},
		{"in mr not shadowed by inc", "in mr", []TokenType{TokenInMr}},
		{"inc still lexes", "inc", []TokenType{TokenInc}},
		{"flinc not split into inc", "flinc", []TokenType{TokenFlinc}},
		{"skip keyword", "skip 2", []TokenType{TokenSkip, TokenNumber}},
		{"no spaces needed", "sc6in mr", []TokenType{TokenSc, TokenNumber, TokenInMr}},
		{"tabs are whitespace", "sc\tinc", []TokenType{TokenSc, TokenInc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewLexer(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("token count = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i].Type != want {
					t.Errorf("token %d type = %s, want %s", i, got[i].Type, want)
				}
			}
		})
	}
}

func TestLexerComment(t *testing.T) {
	l := NewLexer("% hi im a comment %")
	tok, ok := l.Next()
	if !ok {
		t.Fatal("Next() produced no token")
	}
	if tok.Type != TokenComment {
		t.Fatalf("token type = %s, want COMMENT", tok.Type)
	}
	if tok.Value != "hi im a comment" {
		t.Errorf("payload = %q, want %q", tok.Value, "hi im a comment")
	}
	if tok.Line != 1 || tok.Column != 1 {
		t.Errorf("position = (%d, %d), want (1, 1)", tok.Line, tok.Column)
	}
	if !l.IsEmpty() {
		t.Error("lexer not empty after final token")
	}
}

func TestLexerUnterminatedCommentRollsBack(t *testing.T) {
	l := NewLexer("% foobar")

	if _, ok := l.Next(); ok {
		t.Fatal("Next() produced a token for an unterminated comment")
	}
	if l.IsEmpty() {
		t.Error("stream reports empty with unconsumed input remaining")
	}
	if line, col := l.CurrentLocation(); line != 1 || col != 1 {
		t.Errorf("location = (%d, %d), want (1, 1)", line, col)
	}
}

func TestLexerNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{"single digit", "7", 7},
		{"multiple digits", "1234", 1234},
		{"leading zeros allowed", "007", 7},
		{"max uint32", "4294967295", 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := NewLexer(tt.input).Next()
			if !ok {
				t.Fatal("Next() produced no token")
			}
			if tok.Type != TokenNumber {
				t.Fatalf("token type = %s, want NUMBER", tok.Type)
			}
			if tok.Number != tt.want {
				t.Errorf("Number = %d, want %d", tok.Number, tt.want)
			}
		})
	}
}

func TestLexerNumberOverflowRollsBack(t *testing.T) {
	l := NewLexer("4294967296") // one past max uint32

	if _, ok := l.Next(); ok {
		t.Fatal("Next() produced a token for an overflowing literal")
	}
	if line, col := l.CurrentLocation(); line != 1 || col != 1 {
		t.Errorf("location = (%d, %d), want (1, 1)", line, col)
	}
	if l.IsEmpty() {
		t.Error("stream reports empty with unconsumed input remaining")
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	l := NewLexer("sc 6")

	peeked, ok := l.Peek()
	if !ok {
		t.Fatal("Peek() produced no token")
	}
	next, ok := l.Next()
	if !ok {
		t.Fatal("Next() produced no token")
	}
	if peeked != next {
		t.Errorf("Peek() = %+v, Next() = %+v, want identical", peeked, next)
	}

	if tt, ok := l.PeekType(); !ok || tt != TokenNumber {
		t.Errorf("PeekType() = %v, %v; want NUMBER, true", tt, ok)
	}
}

func TestLexerCurrentLocationPrefersPeeked(t *testing.T) {
	l := NewLexer("sc 6")
	l.Next() // consume sc

	// Buffer the number token; its own position must win over the
	// scanner position
	l.Peek()
	if line, col := l.CurrentLocation(); line != 1 || col != 4 {
		t.Errorf("location = (%d, %d), want (1, 4)", line, col)
	}
}

func TestLexerUnrecognizedCharacter(t *testing.T) {
	l := NewLexer("sc ?")
	l.Next() // consume sc

	if _, ok := l.Next(); ok {
		t.Fatal("Next() produced a token at an unrecognized character")
	}
	if line, col := l.CurrentLocation(); line != 1 || col != 4 {
		t.Errorf("location = (%d, %d), want (1, 4)", line, col)
	}
	if l.IsEmpty() {
		t.Error("stream reports empty with unconsumed input remaining")
	}
}
