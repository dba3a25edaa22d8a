//
// eval.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package circuit

import (
	"fmt"

	"github.com/boolcircuit/yaogc/label"
)

// Evaluate runs the evaluator over garbled using inputs, one label per
// primary input wire. For a non-XOR gate it attempts every row of the
// shuffled table rather than selecting one by index, since no
// point-and-permute bit is available to pick it. Computed wire values
// are kept in a sparse map rather than a dense slice, since an imported
// circuit's wire ids are not contiguous.
//
// It returns a map of primary output wire to decoded bit.
func Evaluate(c *Circuit, garbled *Garbled, inputs map[Wire]label.Label) (map[Wire]int, error) {
	computed := make(map[Wire]label.Label, c.WireCount)

	for _, w := range c.PrimaryInputs {
		k, ok := inputs[w]
		if !ok {
			return nil, fmt.Errorf("%w: missing input label for wire %s", ErrInput, w)
		}
		pair, ok := garbled.InputLabels[w]
		if !ok {
			return nil, fmt.Errorf("%w: wire %s is not a primary input of this garbling", ErrStructural, w)
		}
		if !k.Equal(pair.L0) && !k.Equal(pair.L1) {
			return nil, fmt.Errorf("%w: input label for wire %s matches neither known label", ErrInput, w)
		}
		computed[w] = k
	}

	for _, g := range garbled.Gates {
		a, ok := computed[g.Input0]
		if !ok {
			return nil, fmt.Errorf("%w: wire %s evaluated before its driver", ErrStructural, g.Input0)
		}

		if g.Op == XOR {
			b, ok := computed[g.Input1]
			if !ok {
				return nil, fmt.Errorf("%w: wire %s evaluated before its driver", ErrStructural, g.Input1)
			}
			computed[g.Output] = a.Xor(b)
			continue
		}

		var out label.Label
		var err error
		if g.Op.Arity() == 1 {
			out, err = evaluateRows(a, g.Table)
		} else {
			var b label.Label
			b, ok = computed[g.Input1]
			if !ok {
				return nil, fmt.Errorf("%w: wire %s evaluated before its driver", ErrStructural, g.Input1)
			}
			out, err = evaluateRowsBinary(a, b, g.Table)
		}
		if err != nil {
			return nil, fmt.Errorf("gate producing %s: %w", g.Output, err)
		}
		computed[g.Output] = out
	}

	result := make(map[Wire]int, len(c.PrimaryOutputs))
	for _, w := range c.PrimaryOutputs {
		pair, ok := garbled.OutputLabels[w]
		if !ok {
			return nil, fmt.Errorf("%w: wire %s is not a primary output of this garbling", ErrStructural, w)
		}
		bit, err := pair.BitFor(computed[w])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutputLabelMismatch, err)
		}
		result[w] = bit
	}
	return result, nil
}

// evaluateRows attempts to decrypt every row of a NOT gate's table under
// a, returning the first row that authenticates.
func evaluateRows(a label.Label, table [][]byte) (label.Label, error) {
	for _, row := range table {
		out, err := label.DecryptLabel(a, row)
		if err == nil {
			return out, nil
		}
	}
	return label.Label{}, ErrDecryptionMismatch
}

// evaluateRowsBinary attempts to decrypt every row of a two-input non-XOR
// gate's table: outer layer under b, inner layer under a.
func evaluateRowsBinary(a, b label.Label, table [][]byte) (label.Label, error) {
	for _, row := range table {
		inner, err := label.Decrypt(b, row)
		if err != nil {
			continue
		}
		out, err := label.DecryptLabel(a, inner)
		if err == nil {
			return out, nil
		}
	}
	return label.Label{}, ErrDecryptionMismatch
}
