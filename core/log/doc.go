// Package log provides structured logging for the crochet toolchain.
//
// Package: log
// Title: Crochet Structured Logging
// Description: Implements a small structured logging system with log levels,
//              contextual fields, named loggers, and request-ID correlation.
//              Used by the pattern parser and the command-line tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation
//
// Usage:
//
//	import crochetlog "github.com/msto63/crochet/core/log"
//
//	logger := crochetlog.New().
//		WithLevel(crochetlog.LevelDebug).
//		WithName("pattern-parser").
//		WithField("component", "lexer")
//
//	logger.Info("tokenization complete", crochetlog.Fields{"tokens": 42})
package log
