// File: parser.go
// Title: Pattern Recursive Descent Parser
// Description: Implements the parsing phase of pattern processing.
//              Converts token streams into instruction trees using
//              recursive descent parsing. Every error path reports a
//              concrete one-based (line, column) source location.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	crochetlog "github.com/msto63/crochet/core/log"
	crochetast "github.com/msto63/crochet/pattern/ast"
)

// Parser implements recursive descent parsing of crochet patterns
type Parser struct {
	lexer   *Lexer
	logger  *crochetlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger           *crochetlog.Logger
	MaxPatternLength int
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s",
		pe.Line, pe.Column, pe.Message)
}

// stitchKinds maps stitch keyword tokens to their instruction kinds
var stitchKinds = map[TokenType]crochetast.StitchKind{
	TokenCh:    crochetast.StitchCh,
	TokenTch:   crochetast.StitchTch,
	TokenSc:    crochetast.StitchSc,
	TokenFpsc:  crochetast.StitchFpsc,
	TokenBpsc:  crochetast.StitchBpsc,
	TokenBlsc:  crochetast.StitchBlsc,
	TokenInc:   crochetast.StitchInc,
	TokenFlinc: crochetast.StitchFlinc,
	TokenBlinc: crochetast.StitchBlinc,
	TokenDec:   crochetast.StitchDec,
}

// New creates a new pattern parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = crochetlog.GetDefault()
	}
	if opts.MaxPatternLength == 0 {
		opts.MaxPatternLength = 65536
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "pattern-parser"),
		options: opts,
	}
}

// ParseRounds parses pattern source text into an ordered sequence of
// rounds, one instruction tree per round. After a successful parse the
// token stream must be fully drained; leftover input becomes a
// *ParseError at the stream's remaining position.
func (p *Parser) ParseRounds(source string) ([]crochetast.Instruction, error) {
	if len(source) > p.options.MaxPatternLength {
		return nil, fmt.Errorf("pattern exceeds maximum length: %d > %d",
			len(source), p.options.MaxPatternLength)
	}

	p.lexer = NewLexer(source)

	p.logger.Debug("starting pattern parse", crochetlog.Fields{
		"length": len(source),
	})

	rounds, err := p.parsePattern()
	if err == nil && !p.lexer.IsEmpty() {
		line, column := p.lexer.CurrentLocation()
		err = &ParseError{Message: "unconsumed input", Line: line, Column: column}
	}
	if err != nil {
		p.logger.Warn("pattern parse failed", crochetlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("pattern parse completed", crochetlog.Fields{
		"rounds": len(rounds),
	})

	return rounds, nil
}

// parsePattern parses NEWLINE* round (NEWLINE+ round)* NEWLINE*.
// Blank-only input yields an empty round sequence.
func (p *Parser) parsePattern() ([]crochetast.Instruction, error) {
	var rounds []crochetast.Instruction

	p.skipNewlines()
	if p.lexer.IsEmpty() {
		return rounds, nil
	}

	for {
		round, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)

		// A round must be followed by a newline or the end of input
		tok, ok := p.lexer.Peek()
		if !ok {
			return rounds, nil
		}
		if tok.Type != TokenNewline {
			return nil, &ParseError{
				Message: fmt.Sprintf("unexpected %s after round", tok.Type),
				Line:    tok.Line,
				Column:  tok.Column,
			}
		}

		p.skipNewlines()
		if p.lexer.IsEmpty() {
			return rounds, nil
		}
	}
}

// parseGroup parses as many comma-separated instructions as possible.
// A group of exactly one member still yields a Group node.
func (p *Parser) parseGroup() (crochetast.Instruction, error) {
	var items []crochetast.Instruction

	for {
		inst, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		items = append(items, inst)

		if tt, ok := p.lexer.PeekType(); !ok || tt != TokenComma {
			return &crochetast.Group{Items: items}, nil
		}
		p.lexer.Next() // consume ','
	}
}

// parseInstruction parses a single instruction: a stitch keyword with an
// optional suffix, a skip, a comment, or a bracketed group with an
// optional suffix
func (p *Parser) parseInstruction() (crochetast.Instruction, error) {
	tok, ok := p.lexer.Next()
	if !ok {
		line, column := p.lexer.CurrentLocation()
		return nil, &ParseError{Message: "expected instruction", Line: line, Column: column}
	}

	if kind, isStitch := stitchKinds[tok.Type]; isStitch {
		return p.parseSuffix(&crochetast.Stitch{Kind: kind}), nil
	}

	switch tok.Type {
	case TokenSkip:
		return p.parseSkipCount()

	case TokenComment:
		return &crochetast.Comment{Text: tok.Value}, nil

	case TokenLeftBracket:
		group, err := p.parseGroup()
		if err != nil {
			return nil, err
		}

		closing, ok := p.lexer.Next()
		if !ok {
			line, column := p.lexer.CurrentLocation()
			return nil, &ParseError{Message: "expected ']' to close group", Line: line, Column: column}
		}
		if closing.Type != TokenRightBracket {
			return nil, &ParseError{
				Message: fmt.Sprintf("expected ']' to close group, got %s", closing.Type),
				Line:    closing.Line,
				Column:  closing.Column,
			}
		}
		return p.parseSuffix(group), nil

	default:
		return nil, &ParseError{
			Message: fmt.Sprintf("unexpected %s", tok.Type),
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}
}

// parseSkipCount parses the integer literal required after 'skip'
func (p *Parser) parseSkipCount() (crochetast.Instruction, error) {
	tok, ok := p.lexer.Peek()
	if !ok {
		line, column := p.lexer.CurrentLocation()
		return nil, &ParseError{Message: "expected stitch count after 'skip'", Line: line, Column: column}
	}
	if tok.Type != TokenNumber {
		return nil, &ParseError{
			Message: fmt.Sprintf("expected stitch count after 'skip', got %s", tok.Type),
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}
	p.lexer.Next()

	return &crochetast.Skip{Count: tok.Number}, nil
}

// parseSuffix applies the optional instruction suffix in its fixed
// order: a trailing integer wraps the instruction in a Repeat, and a
// following 'in mr' then wraps the (possibly repeated) instruction in
// an IntoMagicRing
func (p *Parser) parseSuffix(inst crochetast.Instruction) crochetast.Instruction {
	if tt, ok := p.lexer.PeekType(); ok && tt == TokenNumber {
		tok, _ := p.lexer.Next()
		inst = &crochetast.Repeat{Inner: inst, Times: tok.Number}
	}
	if tt, ok := p.lexer.PeekType(); ok && tt == TokenInMr {
		p.lexer.Next()
		inst = &crochetast.IntoMagicRing{Inner: inst}
	}
	return inst
}

// skipNewlines consumes consecutive newline tokens
func (p *Parser) skipNewlines() {
	for {
		if tt, ok := p.lexer.PeekType(); !ok || tt != TokenNewline {
			return
		}
		p.lexer.Next()
	}
}
