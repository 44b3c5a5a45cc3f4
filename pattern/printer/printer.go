// File: printer.go
// Title: Report Printer Implementation
// Description: Implements rendering of parsed rounds into the numbered
//              report format "Round N: <instruction> (<output count>)".
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial report rendering

package printer

import (
	"fmt"
	"strings"

	crochetast "github.com/msto63/crochet/pattern/ast"
)

// Format renders rounds into a report suitable for publishing: one line
// per round, "Round {1-based index}: {instruction} ({output count})",
// joined by newlines without a trailing newline.
func Format(rounds []crochetast.Instruction) string {
	var b strings.Builder

	for i, round := range rounds {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Round %d: %s (%d)", i+1, round, round.OutputCount())
	}

	return b.String()
}
