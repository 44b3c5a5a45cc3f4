// Package lint implements semantic consistency checks over parsed rounds.
//
// Package: lint
// Title: Crochet Pattern Lint Engine
// Description: Walks an ordered sequence of parsed rounds and reports
//              stitch-count mismatches between adjacent rounds and a
//              first round that consumes preexisting stitches. Findings
//              are descriptive values, never fatal.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lint engine implementation
package lint
