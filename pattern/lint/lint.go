// File: lint.go
// Title: Lint Engine Implementation
// Description: Implements the stitch-count consistency checks over a
//              sequence of parsed rounds. Defines the finding value types
//              with their human-readable message formatting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lint rules

package lint

import (
	"fmt"

	crochetast "github.com/msto63/crochet/pattern/ast"
)

// Finding represents a single non-fatal semantic consistency report.
// Findings are values; callers decide how to present them.
type Finding interface {
	fmt.Stringer

	// finding is the marker method restricting implementations
	finding()
}

// MismatchedStitchCount reports a round whose produced stitches differ
// from what the next working round consumes
type MismatchedStitchCount struct {
	// AOut is how many stitches round AIndex produces
	AOut uint32

	// AIndex is the one-based index of the producing round
	AIndex int

	// BIn is how many stitches round BIndex consumes
	BIn uint32

	// BIndex is the one-based index of the consuming round
	BIndex int
}

func (m MismatchedStitchCount) String() string {
	return fmt.Sprintf("round %d produces %d %s but round %d consumes %d %s",
		m.AIndex, m.AOut, stitchWord(m.AOut),
		m.BIndex, m.BIn, stitchWord(m.BIn))
}

func (m MismatchedStitchCount) finding() {}

// NonzeroFirstRoundInput reports a first round that consumes stitches.
// A pattern's first round must not require preexisting stitches; it
// either starts from a magic ring or consumes nothing.
type NonzeroFirstRoundInput struct {
	// ActualConsumed is how many stitches the first round consumed
	// when it was expected to consume none
	ActualConsumed uint32
}

func (n NonzeroFirstRoundInput) String() string {
	return fmt.Sprintf("round 1 consumes %d %s but the first round shouldn't consume any stitches",
		n.ActualConsumed, stitchWord(n.ActualConsumed))
}

func (n NonzeroFirstRoundInput) finding() {}

// stitchWord returns the correctly pluralized unit for a count
func stitchWord(n uint32) string {
	if n == 1 {
		return "stitch"
	}
	return "stitches"
}

// Check runs all lint rules over the parsed rounds and returns the
// ordered list of findings. It never mutates the rounds.
func Check(rounds []crochetast.Instruction) []Finding {
	findings := checkMismatchedStitchCounts(rounds)

	if f, ok := checkNonzeroFirstRoundInput(rounds); ok {
		findings = append(findings, f)
	}

	return findings
}

// checkNonzeroFirstRoundInput reports the first round when it consumes
// a nonzero number of stitches
func checkNonzeroFirstRoundInput(rounds []crochetast.Instruction) (Finding, bool) {
	if len(rounds) == 0 {
		return nil, false
	}

	if consumed := rounds[0].InputCount(); consumed != 0 {
		return NonzeroFirstRoundInput{ActualConsumed: consumed}, true
	}
	return nil, false
}

// checkMismatchedStitchCounts compares each working round's produced
// count against the consumed count of the next working round, skipping
// purely decorative rounds (0 in, 0 out, e.g. a bare comment) on both
// sides of the pairing
func checkMismatchedStitchCounts(rounds []crochetast.Instruction) []Finding {
	if len(rounds) < 2 {
		return nil
	}

	var findings []Finding

	for i := 0; i < len(rounds)-1; i++ {
		aOut := rounds[i].OutputCount()
		if aOut == 0 && rounds[i].InputCount() == 0 {
			// Decorative round, never a pairing partner
			continue
		}

		bIndex := -1
		var bIn uint32
		for j := i + 1; j < len(rounds); j++ {
			in := rounds[j].InputCount()
			if in == 0 && rounds[j].OutputCount() == 0 {
				continue
			}
			bIndex = j
			bIn = in
			break
		}
		if bIndex < 0 {
			// Every remaining round is decorative; round i is the last
			// working round of the pattern
			break
		}

		if aOut != bIn {
			findings = append(findings, MismatchedStitchCount{
				AOut:   aOut,
				AIndex: i + 1,
				BIn:    bIn,
				BIndex: bIndex + 1,
			})
		}
	}

	return findings
}
