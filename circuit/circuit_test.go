//
// circuit_test.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package circuit

import (
	"errors"
	"testing"
)

func TestGateTypeArity(t *testing.T) {
	if NOT.Arity() != 1 {
		t.Fatalf("NOT.Arity() = %d, want 1", NOT.Arity())
	}
	for _, op := range []GateType{AND, OR, XOR, NAND, NOR, XNOR, ANDNOT, ORNOT} {
		if op.Arity() != 2 {
			t.Errorf("%s.Arity() = %d, want 2", op, op.Arity())
		}
	}
}

func TestGateTypeEval(t *testing.T) {
	cases := []struct {
		op       GateType
		a, b, out int
	}{
		{AND, 0, 0, 0}, {AND, 1, 0, 0}, {AND, 0, 1, 0}, {AND, 1, 1, 1},
		{OR, 0, 0, 0}, {OR, 1, 0, 1}, {OR, 0, 1, 1}, {OR, 1, 1, 1},
		{XOR, 0, 0, 0}, {XOR, 1, 0, 1}, {XOR, 0, 1, 1}, {XOR, 1, 1, 0},
		{NOT, 0, 0, 1}, {NOT, 1, 0, 0},
		{NAND, 1, 1, 0}, {NAND, 0, 0, 1},
		{NOR, 0, 0, 1}, {NOR, 1, 0, 0},
		{XNOR, 1, 1, 1}, {XNOR, 1, 0, 0},
		{ANDNOT, 1, 0, 1}, {ANDNOT, 1, 1, 0},
		{ORNOT, 0, 1, 0}, {ORNOT, 0, 0, 1},
	}
	for _, c := range cases {
		if got := c.op.Eval(c.a, c.b); got != c.out {
			t.Errorf("%s.Eval(%d,%d) = %d, want %d", c.op, c.a, c.b, got, c.out)
		}
	}
}

func TestBuilderBuildDetectsInputsAndOutputs(t *testing.T) {
	b := NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	and, err := b.NewGate(AND, x, y)
	if err != nil {
		t.Fatal(err)
	}
	or, err := b.NewGate(OR, x, y)
	if err != nil {
		t.Fatal(err)
	}
	c := b.Build()

	if len(c.PrimaryInputs) != 2 || c.PrimaryInputs[0] != x || c.PrimaryInputs[1] != y {
		t.Fatalf("PrimaryInputs = %v, want [%s %s]", c.PrimaryInputs, x, y)
	}
	if len(c.PrimaryOutputs) != 2 {
		t.Fatalf("PrimaryOutputs = %v, want 2 wires", c.PrimaryOutputs)
	}
	found := map[Wire]bool{}
	for _, w := range c.PrimaryOutputs {
		found[w] = true
	}
	if !found[and] || !found[or] {
		t.Fatalf("PrimaryOutputs = %v, want %s and %s", c.PrimaryOutputs, and, or)
	}
}

func TestBuilderNewGateRejectsArityMismatch(t *testing.T) {
	b := NewBuilder()
	x := b.NewWire()
	if _, err := b.NewGate(AND, x); err == nil {
		t.Fatal("expected arity error for AND with one input")
	} else if !errors.Is(err, ErrStructural) {
		t.Fatalf("expected ErrStructural, got %v", err)
	}
	if _, err := b.NewGate(NOT, x, x); err == nil {
		t.Fatal("expected arity error for NOT with two inputs")
	}
}

func TestBuilderNewGateRejectsUnknownWire(t *testing.T) {
	b := NewBuilder()
	x := b.NewWire()
	unknown := Wire(42)
	if _, err := b.NewGate(AND, x, unknown); err == nil {
		t.Fatal("expected error for unknown input wire")
	} else if !errors.Is(err, ErrStructural) {
		t.Fatalf("expected ErrStructural, got %v", err)
	}
}

func TestCircuitReferenceMatchesTruthTable(t *testing.T) {
	b := NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	z := b.NewWire()
	xy, err := b.NewGate(XOR, x, y)
	if err != nil {
		t.Fatal(err)
	}
	out, err := b.NewGate(AND, xy, z)
	if err != nil {
		t.Fatal(err)
	}
	c := b.Build()

	for a := 0; a < 2; a++ {
		for bb := 0; bb < 2; bb++ {
			for cc := 0; cc < 2; cc++ {
				got, err := c.Reference(map[Wire]int{x: a, y: bb, z: cc})
				if err != nil {
					t.Fatal(err)
				}
				want := (a ^ bb) & cc
				if got[out] != want {
					t.Errorf("Reference(%d,%d,%d) = %d, want %d", a, bb, cc, got[out], want)
				}
			}
		}
	}
}

func TestCircuitReferenceMissingInput(t *testing.T) {
	b := NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	if _, err := b.NewGate(AND, x, y); err != nil {
		t.Fatal(err)
	}
	c := b.Build()

	if _, err := c.Reference(map[Wire]int{x: 1}); !errors.Is(err, ErrInput) {
		t.Fatalf("expected ErrInput for missing wire, got %v", err)
	}
}

func TestCircuitString(t *testing.T) {
	b := NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	if _, err := b.NewGate(AND, x, y); err != nil {
		t.Fatal(err)
	}
	c := b.Build()
	if s := c.String(); s == "" {
		t.Fatal("String() returned empty string")
	}
}
