// Package ast defines the instruction tree for crochet patterns.
//
// Package: ast
// Title: Crochet Instruction Tree
// Description: Defines the instruction node types produced by the pattern
//              parser, the structural stitch-count computation over them,
//              the canonical text serializer, and a visitor for traversal.
//              Trees are built once per parse and never mutated afterward.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial instruction tree definitions
package ast
