// Package printer renders parsed rounds as a numbered, publishable report.
//
// Package: printer
// Title: Crochet Pattern Report Printer
// Description: Renders an ordered sequence of parsed rounds as a numbered
//              report with each round's canonical text and produced stitch
//              count. The printer never mutates the rounds it renders.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial printer implementation
package printer
