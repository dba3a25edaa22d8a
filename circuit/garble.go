//
// garble.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	mrand "math/rand/v2"

	"github.com/boolcircuit/yaogc/label"
)

// GarbledGate is the encrypted form of one gate. For XOR it carries no
// table: the output labels are defined by the free-XOR derivation and the
// evaluator computes them by XOR-ing the input labels directly. For every
// other gate type Table holds 2^Arity() shuffled, authenticated
// ciphertext rows with their (a,b) keys discarded.
type GarbledGate struct {
	Op     GateType
	Input0 Wire
	Input1 Wire
	Output Wire
	Table  [][]byte
}

// Garbled is the evaluator-facing output of garbling a circuit. It
// exposes only the restricted view the evaluator is entitled to: both
// labels of every primary input and primary output wire, and the garbled
// gates in topological order. Neither the garbler's private delta nor the
// unused label of any internal wire is ever placed here.
type Garbled struct {
	InputLabels  map[Wire]label.Wire
	OutputLabels map[Wire]label.Wire
	Gates        []GarbledGate
}

// Garble garbles c under a freshly sampled delta read from rand, which
// must be a cryptographic random source. Delta and primary-wire labels
// are sampled first, then every gate is garbled in topological order.
//
// This is classical garbled-row Yao with the free-XOR optimization only:
// no point-and-permute, no half-gates.
func Garble(c *Circuit, rand io.Reader) (*Garbled, error) {
	delta, err := label.NewDelta(rand)
	if err != nil {
		return nil, fmt.Errorf("%w: sample delta: %v", ErrCrypto, err)
	}

	wires := make(map[Wire]label.Wire, c.WireCount)

	for _, w := range c.PrimaryInputs {
		pair, err := label.NewPair(rand, delta)
		if err != nil {
			return nil, fmt.Errorf("%w: sample input labels: %v", ErrCrypto, err)
		}
		wires[w] = pair
	}

	// Pre-sample output-wire labels for every primary output. An output
	// driven by an XOR gate does not get a pre-assigned pair: its labels
	// come from the free-XOR derivation instead, so XOR never costs a
	// table even on an output wire.
	drivenByXOR := make(map[Wire]bool, len(c.Gates))
	for _, g := range c.Gates {
		if g.Op == XOR {
			drivenByXOR[g.Output] = true
		}
	}
	isOutput := make(map[Wire]bool, len(c.PrimaryOutputs))
	for _, w := range c.PrimaryOutputs {
		isOutput[w] = true
		if drivenByXOR[w] {
			continue
		}
		pair, err := label.NewPair(rand, delta)
		if err != nil {
			return nil, fmt.Errorf("%w: sample output labels: %v", ErrCrypto, err)
		}
		wires[w] = pair
	}

	gates := make([]GarbledGate, len(c.Gates))
	for i, g := range c.Gates {
		gg, err := garbleGate(g, wires, delta, rand)
		if err != nil {
			return nil, err
		}
		gates[i] = gg
	}

	inputLabels := make(map[Wire]label.Wire, len(c.PrimaryInputs))
	for _, w := range c.PrimaryInputs {
		inputLabels[w] = wires[w]
	}
	outputLabels := make(map[Wire]label.Wire, len(c.PrimaryOutputs))
	for _, w := range c.PrimaryOutputs {
		outputLabels[w] = wires[w]
	}

	return &Garbled{
		InputLabels:  inputLabels,
		OutputLabels: outputLabels,
		Gates:        gates,
	}, nil
}

// garbleGate garbles a single gate, mutating wires to record the output
// wire's label pair.
func garbleGate(g Gate, wires map[Wire]label.Wire, delta label.Label,
	rnd io.Reader) (GarbledGate, error) {

	a, ok := wires[g.Input0]
	if !ok {
		return GarbledGate{}, fmt.Errorf("%w: gate output %s: input wire %s not yet garbled",
			ErrStructural, g.Output, g.Input0)
	}

	if g.Op == XOR {
		var b label.Wire
		b, ok = wires[g.Input1]
		if !ok {
			return GarbledGate{}, fmt.Errorf("%w: gate output %s: input wire %s not yet garbled",
				ErrStructural, g.Output, g.Input1)
		}
		l0 := a.L0.Xor(b.L0)
		wires[g.Output] = label.Wire{L0: l0, L1: l0.Xor(delta)}
		return GarbledGate{Op: XOR, Input0: g.Input0, Input1: g.Input1, Output: g.Output}, nil
	}

	out, existing := wires[g.Output]
	if !existing {
		var err error
		out, err = label.NewPair(rnd, delta)
		if err != nil {
			return GarbledGate{}, fmt.Errorf("%w: sample output labels for %s: %v",
				ErrCrypto, g.Output, err)
		}
		wires[g.Output] = out
	}

	var rows [][]byte
	if g.Op.Arity() == 1 {
		var err error
		rows, err = garbleRowsUnary(g.Op, a, out)
		if err != nil {
			return GarbledGate{}, err
		}
	} else {
		b, ok := wires[g.Input1]
		if !ok {
			return GarbledGate{}, fmt.Errorf("%w: gate output %s: input wire %s not yet garbled",
				ErrStructural, g.Output, g.Input1)
		}
		var err error
		rows, err = garbleRowsBinary(g.Op, a, b, out)
		if err != nil {
			return GarbledGate{}, err
		}
	}

	shuffleRows(rnd, rows)

	return GarbledGate{
		Op:     g.Op,
		Input0: g.Input0,
		Input1: g.Input1,
		Output: g.Output,
		Table:  rows,
	}, nil
}

// garbleRowsUnary builds the two-row table of a NOT gate: for each value
// v of the input wire, a row encrypting the output label for NOT(v)
// under the input label for v.
func garbleRowsUnary(op GateType, a, out label.Wire) ([][]byte, error) {
	rows := make([][]byte, 2)
	for v := 0; v < 2; v++ {
		outBit := op.Eval(v, 0)
		ct, err := label.EncryptLabel(a.ForBit(v), out.ForBit(outBit))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
		}
		rows[v] = ct
	}
	return rows, nil
}

// garbleRowsBinary builds the four-row table of a two-input non-XOR gate:
// for each (u,v), the output label for f(u,v) double-encrypted, inner
// layer under the input label for u, outer layer under the input label
// for v.
func garbleRowsBinary(op GateType, a, b, out label.Wire) ([][]byte, error) {
	rows := make([][]byte, 0, 4)
	for u := 0; u < 2; u++ {
		for v := 0; v < 2; v++ {
			outBit := op.Eval(u, v)
			inner, err := label.EncryptLabel(a.ForBit(u), out.ForBit(outBit))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
			}
			outer, err := label.Encrypt(b.ForBit(v), inner)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
			}
			rows = append(rows, outer)
		}
	}
	return rows, nil
}

// shuffleRows permutes rows uniformly at random, discarding any
// correspondence between a row's position and the (a,b) values it was
// encrypted under. rand seeds a math/rand/v2 source for the Fisher-Yates
// shuffle itself, since math/rand/v2 has no direct "shuffle from an
// io.Reader" entry point.
func shuffleRows(rnd io.Reader, rows [][]byte) {
	var seed [32]byte
	if _, err := io.ReadFull(rnd, seed[:]); err != nil {
		// The caller's rand source is expected to never fail in
		// practice (crypto/rand.Reader); if it does, leave the rows in
		// construction order rather than panicking.
		return
	}
	src := mrand.NewChaCha8(seed)
	r := mrand.New(src)
	r.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
}
