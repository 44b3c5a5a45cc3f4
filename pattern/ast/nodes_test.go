// File: nodes_test.go
// Title: Instruction Node Unit Tests
// Description: Tests for instruction count computation and canonical string
//              rendering, covering primitive stitch tables, skip and comment
//              nodes, magic ring and repeat wrappers, and group sums.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial instruction node tests

package ast

import (
	"testing"
)

func TestStitchCounts(t *testing.T) {
	tests := []struct {
		kind    StitchKind
		in, out uint32
	}{
		{StitchCh, 0, 1},
		{StitchTch, 0, 1},
		{StitchSc, 1, 1},
		{StitchFpsc, 1, 1},
		{StitchBpsc, 1, 1},
		{StitchBlsc, 1, 1},
		{StitchInc, 1, 2},
		{StitchFlinc, 1, 2},
		{StitchBlinc, 1, 2},
		{StitchDec, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := &Stitch{Kind: tt.kind}
			if got := s.InputCount(); got != tt.in {
				t.Errorf("InputCount() = %d, want %d", got, tt.in)
			}
			if got := s.OutputCount(); got != tt.out {
				t.Errorf("OutputCount() = %d, want %d", got, tt.out)
			}
		})
	}
}

func TestSkipCounts(t *testing.T) {
	s := &Skip{Count: 3}
	if got := s.InputCount(); got != 3 {
		t.Errorf("InputCount() = %d, want 3", got)
	}
	if got := s.OutputCount(); got != 0 {
		t.Errorf("OutputCount() = %d, want 0", got)
	}
}

func TestCommentCounts(t *testing.T) {
	c := &Comment{Text: "decorative"}
	if got := c.InputCount(); got != 0 {
		t.Errorf("InputCount() = %d, want 0", got)
	}
	if got := c.OutputCount(); got != 0 {
		t.Errorf("OutputCount() = %d, want 0", got)
	}
}

func TestIntoMagicRingForcesZeroInput(t *testing.T) {
	m := &IntoMagicRing{Inner: &Repeat{Inner: &Stitch{Kind: StitchSc}, Times: 6}}
	if got := m.InputCount(); got != 0 {
		t.Errorf("InputCount() = %d, want 0", got)
	}
	if got := m.OutputCount(); got != 6 {
		t.Errorf("OutputCount() = %d, want 6", got)
	}
}

func TestRepeatMultipliesCounts(t *testing.T) {
	r := &Repeat{Inner: &Stitch{Kind: StitchInc}, Times: 4}
	if got := r.InputCount(); got != 4 {
		t.Errorf("InputCount() = %d, want 4", got)
	}
	if got := r.OutputCount(); got != 8 {
		t.Errorf("OutputCount() = %d, want 8", got)
	}
}

func TestGroupSumsCounts(t *testing.T) {
	g := &Group{Items: []Instruction{
		&Stitch{Kind: StitchSc},
		&Stitch{Kind: StitchInc},
		&Stitch{Kind: StitchDec},
		&Comment{Text: "ignored"},
	}}
	if got := g.InputCount(); got != 4 {
		t.Errorf("InputCount() = %d, want 4", got)
	}
	if got := g.OutputCount(); got != 4 {
		t.Errorf("OutputCount() = %d, want 4", got)
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		name string
		inst Instruction
		want string
	}{
		{"stitch", &Stitch{Kind: StitchSc}, "sc"},
		{"skip", &Skip{Count: 2}, "skip 2"},
		{"comment", &Comment{Text: "hi"}, "% hi %"},
		{"repeat of stitch", &Repeat{Inner: &Stitch{Kind: StitchSc}, Times: 6}, "sc 6"},
		{"repeat of group is bracketed",
			&Repeat{Inner: &Group{Items: []Instruction{
				&Stitch{Kind: StitchInc},
				&Stitch{Kind: StitchSc},
			}}, Times: 3},
			"[inc, sc] 3"},
		{"magic ring on stitch", &IntoMagicRing{Inner: &Stitch{Kind: StitchSc}}, "sc in mr"},
		{"magic ring on repeat",
			&IntoMagicRing{Inner: &Repeat{Inner: &Stitch{Kind: StitchSc}, Times: 6}},
			"sc 6 in mr"},
		{"magic ring on group is bracketed",
			&IntoMagicRing{Inner: &Group{Items: []Instruction{
				&Stitch{Kind: StitchSc},
				&Repeat{Inner: &Stitch{Kind: StitchInc}, Times: 2},
			}}},
			"[sc, inc 2] in mr"},
		{"group joins with commas",
			&Group{Items: []Instruction{
				&Repeat{Inner: &Stitch{Kind: StitchSc}, Times: 4},
				&Comment{Text: "hi im a comment"},
				&Stitch{Kind: StitchInc},
			}},
			"sc 4, % hi im a comment %, inc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inst.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
