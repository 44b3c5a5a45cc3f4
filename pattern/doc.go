// Package pattern compiles crochet pattern notation into instruction trees.
//
// Package: pattern
// Title: Crochet Pattern Compiler
// Description: Provides the high-level API for parsing crochet pattern
//              notation into instruction trees, linting the stitch-count
//              consistency of the parsed rounds, and rendering them as a
//              canonical numbered report. Integrates the parser, ast,
//              lint, and printer subpackages behind an Engine facade.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial engine implementation
//
// # Pattern Notation Overview
//
// A pattern is a sequence of rounds, one round per line. A round is a
// comma-separated list of instructions:
//
//	sc 6 in mr
//	inc 6
//	[inc, sc] 6
//
// Instructions are stitch keywords (ch, tch, sc, fpsc, bpsc, blsc, inc,
// flinc, blinc, dec), "skip N", %-delimited comments, and bracketed
// groups. An instruction may carry a repeat count and an "in mr" magic
// ring marker, in that order.
//
// Usage:
//
//	rounds, err := pattern.ParseRounds(source)
//	if err != nil {
//		// err carries an exact one-based (line, column) location
//	}
//	findings := pattern.LintRounds(rounds)
//	report := pattern.PrettyFormat(rounds)
package pattern
