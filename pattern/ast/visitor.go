// File: visitor.go
// Title: Instruction Tree Visitor
// Description: Implements the visitor pattern for traversing instruction
//              trees. Provides the base visitor with default recursive
//              traversal and a stitch-kind tally visitor used for
//              pattern statistics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial visitor implementation

package ast

// Visitor is the interface for traversing instruction trees
type Visitor interface {
	VisitStitch(s *Stitch) interface{}
	VisitSkip(s *Skip) interface{}
	VisitComment(c *Comment) interface{}
	VisitIntoMagicRing(m *IntoMagicRing) interface{}
	VisitGroup(g *Group) interface{}
	VisitRepeat(r *Repeat) interface{}
}

// Accept dispatches the visitor to the stitch node
func (s *Stitch) Accept(visitor Visitor) interface{} { return visitor.VisitStitch(s) }

// Accept dispatches the visitor to the skip node
func (s *Skip) Accept(visitor Visitor) interface{} { return visitor.VisitSkip(s) }

// Accept dispatches the visitor to the comment node
func (c *Comment) Accept(visitor Visitor) interface{} { return visitor.VisitComment(c) }

// Accept dispatches the visitor to the magic ring node
func (m *IntoMagicRing) Accept(visitor Visitor) interface{} { return visitor.VisitIntoMagicRing(m) }

// Accept dispatches the visitor to the group node
func (g *Group) Accept(visitor Visitor) interface{} { return visitor.VisitGroup(g) }

// Accept dispatches the visitor to the repeat node
func (r *Repeat) Accept(visitor Visitor) interface{} { return visitor.VisitRepeat(r) }

// BaseVisitor provides default implementations for all visitor methods
// with recursive traversal into composite nodes. Embed it in concrete
// visitors to only override the methods needed.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitStitch(s *Stitch) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitSkip(s *Skip) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitComment(c *Comment) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIntoMagicRing(m *IntoMagicRing) interface{} {
	if m.Inner != nil {
		return m.Inner.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitGroup(g *Group) interface{} {
	for _, item := range g.Items {
		item.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitRepeat(r *Repeat) interface{} {
	if r.Inner != nil {
		return r.Inner.Accept(bv)
	}
	return nil
}

// KindTally counts how often each stitch kind occurs in a tree. A stitch
// under a repeat is counted once per repetition.
type KindTally struct {
	counts map[StitchKind]uint32
	// repeat multipliers active along the current path
	factor uint32
}

// NewKindTally creates an empty stitch-kind tally
func NewKindTally() *KindTally {
	return &KindTally{
		counts: make(map[StitchKind]uint32),
		factor: 1,
	}
}

// Count returns the tally for a stitch kind
func (kt *KindTally) Count(kind StitchKind) uint32 { return kt.counts[kind] }

// Counts returns the full tally map
func (kt *KindTally) Counts() map[StitchKind]uint32 { return kt.counts }

func (kt *KindTally) VisitStitch(s *Stitch) interface{} {
	kt.counts[s.Kind] += kt.factor
	return nil
}

func (kt *KindTally) VisitSkip(s *Skip) interface{} { return nil }

func (kt *KindTally) VisitComment(c *Comment) interface{} { return nil }

func (kt *KindTally) VisitIntoMagicRing(m *IntoMagicRing) interface{} {
	if m.Inner != nil {
		m.Inner.Accept(kt)
	}
	return nil
}

func (kt *KindTally) VisitGroup(g *Group) interface{} {
	for _, item := range g.Items {
		item.Accept(kt)
	}
	return nil
}

func (kt *KindTally) VisitRepeat(r *Repeat) interface{} {
	if r.Inner == nil {
		return nil
	}
	prev := kt.factor
	kt.factor *= r.Times
	r.Inner.Accept(kt)
	kt.factor = prev
	return nil
}
