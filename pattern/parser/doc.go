// Package parser implements lexing and parsing of crochet pattern notation.
//
// Package: parser
// Title: Crochet Pattern Parser
// Description: Converts pattern source text into positioned token streams
//              and parses them into instruction trees by recursive descent.
//              All error paths report one-based (line, column) locations
//              addressing the exact offending character.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lexer and parser implementation
package parser
