// File: pattern.go
// Title: Pattern Engine and High-Level API
// Description: Provides the Engine facade coordinating parsing, linting,
//              and report rendering, plus package-level convenience
//              functions over a default engine. This is the sole entry
//              point consumed by the command-line layer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial engine implementation

package pattern

import (
	"time"

	crochetlog "github.com/msto63/crochet/core/log"
	crochetast "github.com/msto63/crochet/pattern/ast"
	crochetlint "github.com/msto63/crochet/pattern/lint"
	crochetparser "github.com/msto63/crochet/pattern/parser"
	crochetprinter "github.com/msto63/crochet/pattern/printer"
)

// Engine coordinates parsing, linting, and report rendering
type Engine struct {
	parser  *crochetparser.Parser
	logger  *crochetlog.Logger
	options Options
}

// Options configures the pattern engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *crochetlog.Logger

	// MaxPatternLength limits input length in bytes (default: 65536)
	MaxPatternLength int
}

// Result represents the outcome of a full pattern check
type Result struct {
	// Rounds is the parsed instruction tree sequence
	Rounds []crochetast.Instruction

	// Findings lists lint findings; the rounds stay usable regardless
	Findings []crochetlint.Finding

	// Report is the canonical numbered report text
	Report string

	// Duration is the time taken by parsing and linting
	Duration time.Duration
}

// NewEngine creates a new pattern engine with the given options
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = crochetlog.GetDefault()
	}

	return &Engine{
		parser: crochetparser.New(crochetparser.Options{
			Logger:           opts.Logger,
			MaxPatternLength: opts.MaxPatternLength,
		}),
		logger:  opts.Logger.WithField("component", "pattern-engine"),
		options: opts,
	}
}

// ParseRounds parses pattern source text into an ordered sequence of
// rounds. Errors are *parser.ParseError values carrying the exact
// one-based (line, column) of the offending character.
func (e *Engine) ParseRounds(source string) ([]crochetast.Instruction, error) {
	return e.parser.ParseRounds(source)
}

// LintRounds runs the consistency checks over parsed rounds
func (e *Engine) LintRounds(rounds []crochetast.Instruction) []crochetlint.Finding {
	return crochetlint.Check(rounds)
}

// PrettyFormat renders parsed rounds as the canonical numbered report
func (e *Engine) PrettyFormat(rounds []crochetast.Instruction) string {
	return crochetprinter.Format(rounds)
}

// Check parses, lints, and renders a pattern in one step
func (e *Engine) Check(source string) (*Result, error) {
	start := time.Now()

	rounds, err := e.ParseRounds(source)
	if err != nil {
		return nil, err
	}

	findings := e.LintRounds(rounds)

	e.logger.Debug("pattern check completed", crochetlog.Fields{
		"rounds":   len(rounds),
		"findings": len(findings),
	})

	return &Result{
		Rounds:   rounds,
		Findings: findings,
		Report:   crochetprinter.Format(rounds),
		Duration: time.Since(start),
	}, nil
}

// defaultEngine backs the package-level convenience functions
var defaultEngine = NewEngine(Options{})

// ParseRounds parses pattern source text using the default engine
func ParseRounds(source string) ([]crochetast.Instruction, error) {
	return defaultEngine.ParseRounds(source)
}

// LintRounds runs the consistency checks using the default engine
func LintRounds(rounds []crochetast.Instruction) []crochetlint.Finding {
	return defaultEngine.LintRounds(rounds)
}

// PrettyFormat renders parsed rounds using the default engine
func PrettyFormat(rounds []crochetast.Instruction) string {
	return defaultEngine.PrettyFormat(rounds)
}
