package cmd

import (
	"fmt"
	"strings"

	crochetparser "github.com/msto63/crochet/pattern/parser"
)

// renderDiagnostic formats a parse error as a caret-style source snippet:
// the offending source line with a caret drawn underneath the exact
// one-based column reported by the parser.
func renderDiagnostic(source string, perr *crochetparser.ParseError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", render(errorStyle, "error:"), perr.Message)
	fmt.Fprintf(&b, "  %s line %d, column %d\n", render(mutedStyle, "-->"), perr.Line, perr.Column)

	lines := strings.Split(source, "\n")
	if perr.Line < 1 || perr.Line > len(lines) {
		return b.String()
	}
	srcLine := lines[perr.Line-1]

	gutter := fmt.Sprintf("%d", perr.Line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(&b, "%s %s\n", render(mutedStyle, pad+" |"), "")
	fmt.Fprintf(&b, "%s %s\n", render(mutedStyle, gutter+" |"), srcLine)
	fmt.Fprintf(&b, "%s %s%s\n", render(mutedStyle, pad+" |"), caretPadding(srcLine, perr.Column), render(caretStyle, "^"))

	return b.String()
}

// caretPadding builds the whitespace before the caret, preserving tabs
// from the source line so the caret stays aligned on tabbed lines
func caretPadding(srcLine string, column int) string {
	var pad strings.Builder
	for i := 0; i < column-1 && i < len(srcLine); i++ {
		if srcLine[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	// Column can point one past the end of the line (end-of-input errors)
	for i := len(srcLine); i < column-1; i++ {
		pad.WriteByte(' ')
	}
	return pad.String()
}
