// File: nodes.go
// Title: Instruction Node Definitions
// Description: Defines all instruction node types for representing crochet
//              rounds, including primitive stitches, skips, comments, magic
//              ring wrappers, groups, and repeats. Provides stitch-count
//              computation and the canonical string serialization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial instruction node definitions

package ast

import (
	"fmt"
	"strings"
)

// Instruction represents a node of a round's instruction tree.
//
// InputCount reports how many stitches of the previous round the
// instruction works into; OutputCount reports how many stitches it
// creates. String renders the canonical surface syntax accepted by
// the parser, so re-parsing a rendered instruction yields a tree
// that renders identically.
type Instruction interface {
	// InputCount returns the number of stitches the instruction consumes
	InputCount() uint32

	// OutputCount returns the number of stitches the instruction produces
	OutputCount() uint32

	// String returns the canonical textual form of the instruction
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// instruction is the marker method restricting implementations
	instruction()
}

// StitchKind identifies a primitive stitch instruction
type StitchKind int

const (
	// StitchCh is a chain stitch
	StitchCh StitchKind = iota

	// StitchTch is a turning chain
	StitchTch

	// StitchSc is a single crochet
	StitchSc

	// StitchFpsc is a front-post single crochet
	StitchFpsc

	// StitchBpsc is a back-post single crochet
	StitchBpsc

	// StitchBlsc is a back-loop single crochet
	StitchBlsc

	// StitchInc is an increase (two stitches into one)
	StitchInc

	// StitchFlinc is a front-loop increase
	StitchFlinc

	// StitchBlinc is a back-loop increase
	StitchBlinc

	// StitchDec is a decrease (one stitch over two)
	StitchDec
)

// stitchCounts maps each stitch kind to its consumed and produced counts
var stitchCounts = map[StitchKind]struct{ in, out uint32 }{
	StitchCh:    {0, 1},
	StitchTch:   {0, 1},
	StitchSc:    {1, 1},
	StitchFpsc:  {1, 1},
	StitchBpsc:  {1, 1},
	StitchBlsc:  {1, 1},
	StitchInc:   {1, 2},
	StitchFlinc: {1, 2},
	StitchBlinc: {1, 2},
	StitchDec:   {2, 1},
}

// stitchNames maps each stitch kind to its keyword
var stitchNames = map[StitchKind]string{
	StitchCh:    "ch",
	StitchTch:   "tch",
	StitchSc:    "sc",
	StitchFpsc:  "fpsc",
	StitchBpsc:  "bpsc",
	StitchBlsc:  "blsc",
	StitchInc:   "inc",
	StitchFlinc: "flinc",
	StitchBlinc: "blinc",
	StitchDec:   "dec",
}

// String returns the keyword for the stitch kind
func (k StitchKind) String() string {
	if name, ok := stitchNames[k]; ok {
		return name
	}
	return "unknown"
}

// Stitch represents a single primitive stitch instruction
type Stitch struct {
	Kind StitchKind
}

// InputCount returns the stitches consumed by the stitch
func (s *Stitch) InputCount() uint32 { return stitchCounts[s.Kind].in }

// OutputCount returns the stitches produced by the stitch
func (s *Stitch) OutputCount() uint32 { return stitchCounts[s.Kind].out }

// String returns the stitch keyword
func (s *Stitch) String() string { return s.Kind.String() }

func (s *Stitch) instruction() {}

// Skip represents skipping stitches of the previous round without
// working into them
type Skip struct {
	Count uint32
}

// InputCount returns the number of skipped stitches
func (s *Skip) InputCount() uint32 { return s.Count }

// OutputCount returns zero; skipping creates no stitches
func (s *Skip) OutputCount() uint32 { return 0 }

// String returns the skip instruction text
func (s *Skip) String() string { return fmt.Sprintf("skip %d", s.Count) }

func (s *Skip) instruction() {}

// Comment represents documentation carried inside a round; it has no
// stitch effect
type Comment struct {
	Text string
}

// InputCount returns zero
func (c *Comment) InputCount() uint32 { return 0 }

// OutputCount returns zero
func (c *Comment) OutputCount() uint32 { return 0 }

// String returns the delimited comment text
func (c *Comment) String() string { return fmt.Sprintf("%% %s %%", c.Text) }

func (c *Comment) instruction() {}

// IntoMagicRing wraps an instruction worked into a magic ring. A magic
// ring has no prior stitches, so the consumed count is forced to zero
// while the produced count of the inner instruction is kept.
type IntoMagicRing struct {
	Inner Instruction
}

// InputCount returns zero regardless of the inner instruction
func (m *IntoMagicRing) InputCount() uint32 { return 0 }

// OutputCount returns the inner instruction's produced count
func (m *IntoMagicRing) OutputCount() uint32 { return m.Inner.OutputCount() }

// String renders the inner instruction followed by the magic ring
// marker, bracketing groups so the suffix binds to the whole group
func (m *IntoMagicRing) String() string {
	if _, isGroup := m.Inner.(*Group); isGroup {
		return fmt.Sprintf("[%s] in mr", m.Inner)
	}
	return fmt.Sprintf("%s in mr", m.Inner)
}

func (m *IntoMagicRing) instruction() {}

// Group represents an ordered sequence of sibling instructions within
// one round. The grammar never produces an empty group.
type Group struct {
	Items []Instruction
}

// InputCount returns the sum of the children's consumed counts
func (g *Group) InputCount() uint32 {
	var sum uint32
	for _, item := range g.Items {
		sum += item.InputCount()
	}
	return sum
}

// OutputCount returns the sum of the children's produced counts
func (g *Group) OutputCount() uint32 {
	var sum uint32
	for _, item := range g.Items {
		sum += item.OutputCount()
	}
	return sum
}

// String joins the children with commas; a group without a suffix
// needs no brackets
func (g *Group) String() string {
	parts := make([]string, len(g.Items))
	for i, item := range g.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}

func (g *Group) instruction() {}

// Repeat represents an instruction performed a fixed number of times
type Repeat struct {
	Inner Instruction
	Times uint32
}

// InputCount returns the inner consumed count times the multiplier
func (r *Repeat) InputCount() uint32 { return r.Inner.InputCount() * r.Times }

// OutputCount returns the inner produced count times the multiplier
func (r *Repeat) OutputCount() uint32 { return r.Inner.OutputCount() * r.Times }

// String renders the inner instruction followed by the repeat count,
// bracketing groups so the count binds to the whole group
func (r *Repeat) String() string {
	if _, isGroup := r.Inner.(*Group); isGroup {
		return fmt.Sprintf("[%s] %d", r.Inner, r.Times)
	}
	return fmt.Sprintf("%s %d", r.Inner, r.Times)
}

func (r *Repeat) instruction() {}
