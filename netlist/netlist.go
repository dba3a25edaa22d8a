//
// netlist.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

// Package netlist imports synthesized combinational designs in the
// Yosys `write_json` document format into a circuit.Circuit.
package netlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/boolcircuit/yaogc/circuit"
)

// ErrUnsupportedCell is returned for a cell type outside the closed set
// circuit.GateType models.
var ErrUnsupportedCell = errors.New("netlist: unsupported cell type")

// ErrUnsupportedPort is returned for a port direction other than
// "input" or "output" (e.g. "inout", which this importer does not
// support).
var ErrUnsupportedPort = errors.New("netlist: unsupported port direction")

// ErrModuleCount is returned when the document does not contain exactly
// one module. This importer has no notion of hierarchical instantiation.
var ErrModuleCount = errors.New("netlist: exactly one module expected")

// Document mirrors the subset of Yosys's JSON backend output this
// package understands.
type Document struct {
	Modules map[string]Module `json:"modules"`
}

// Module is a single design module's ports and cells.
type Module struct {
	Ports map[string]Port `json:"ports"`
	Cells map[string]Cell `json:"cells"`
}

// Port is a named, possibly multi-bit, module input or output. Bits are
// Yosys net ids, one per bit position in declaration order (bit 0 is the
// port's least significant bit).
type Port struct {
	Direction string `json:"direction"`
	Bits      []int  `json:"bits"`
}

// Cell is a single-output combinational primitive instance. Only the
// two-input/one-output and one-input/one-output gate cells Yosys's
// `techmap -simplemap` pass emits (ports named "A", optionally "B", and
// "Y") are understood.
type Cell struct {
	Type        string           `json:"type"`
	Connections map[string][]int `json:"connections"`
}

var gateTypes = map[string]circuit.GateType{
	"$_AND_":    circuit.AND,
	"$_OR_":     circuit.OR,
	"$_XOR_":    circuit.XOR,
	"$_NOT_":    circuit.NOT,
	"$_NAND_":   circuit.NAND,
	"$_NOR_":    circuit.NOR,
	"$_XNOR_":   circuit.XNOR,
	"$_ANDNOT_": circuit.ANDNOT,
	"$_ORNOT_":  circuit.ORNOT,
}

// Parse decodes r as a Yosys JSON netlist and returns the resulting
// circuit together with each named port's bits, in declared
// little-endian bit order, so the caller can pack and unpack multi-bit
// buses.
//
// Net ids 0 and 1 are reserved by the format for the constant bits false
// and true. This importer rejects any use of them, since a tied-off net
// has no label pair to assign.
func Parse(r io.Reader) (*circuit.Circuit, map[string][]circuit.Wire, map[string][]circuit.Wire, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: netlist: decode: %w", circuit.ErrStructural, err)
	}
	if len(doc.Modules) != 1 {
		return nil, nil, nil, fmt.Errorf("%w: %w: got %d", circuit.ErrStructural, ErrModuleCount, len(doc.Modules))
	}
	var mod Module
	for _, m := range doc.Modules {
		mod = m
	}

	inputs := make(map[string][]circuit.Wire)
	outputs := make(map[string][]circuit.Wire)
	isPrimaryInput := make(map[circuit.Wire]bool)
	var outputWires []circuit.Wire

	for _, name := range sortedKeys(mod.Ports) {
		port := mod.Ports[name]
		wires := make([]circuit.Wire, len(port.Bits))
		for i, bit := range port.Bits {
			if bit == 0 || bit == 1 {
				return nil, nil, nil, fmt.Errorf(
					"%w: netlist: port %q bit %d: constant nets are not supported",
					circuit.ErrStructural, name, i)
			}
			wires[i] = circuit.Wire(bit)
		}
		switch port.Direction {
		case "input":
			inputs[name] = wires
			for _, w := range wires {
				isPrimaryInput[w] = true
			}
		case "output":
			outputs[name] = wires
			outputWires = append(outputWires, wires...)
		default:
			return nil, nil, nil, fmt.Errorf("%w: %w: %q", circuit.ErrStructural, ErrUnsupportedPort, port.Direction)
		}
	}

	gatesByOutput := make(map[circuit.Wire]circuit.Gate, len(mod.Cells))
	for _, name := range sortedKeys(mod.Cells) {
		cell := mod.Cells[name]
		op, ok := gateTypes[cell.Type]
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: %w: %q", circuit.ErrStructural, ErrUnsupportedCell, cell.Type)
		}
		for port, bits := range cell.Connections {
			for _, bit := range bits {
				if bit == 0 || bit == 1 {
					return nil, nil, nil, fmt.Errorf(
						"%w: netlist: cell %q port %s: constant nets are not supported",
						circuit.ErrStructural, name, port)
				}
			}
		}

		yBits := cell.Connections["Y"]
		if len(yBits) != 1 {
			return nil, nil, nil, fmt.Errorf("%w: netlist: cell %q: missing single-bit Y connection",
				circuit.ErrStructural, name)
		}
		g := circuit.Gate{Op: op, Output: circuit.Wire(yBits[0])}

		aBits := cell.Connections["A"]
		if len(aBits) != 1 {
			return nil, nil, nil, fmt.Errorf("%w: netlist: cell %q: missing single-bit A connection",
				circuit.ErrStructural, name)
		}
		g.Input0 = circuit.Wire(aBits[0])

		if op.Arity() == 2 {
			bBits := cell.Connections["B"]
			if len(bBits) != 1 {
				return nil, nil, nil, fmt.Errorf("%w: netlist: cell %q: missing single-bit B connection",
					circuit.ErrStructural, name)
			}
			g.Input1 = circuit.Wire(bBits[0])
		}
		if _, dup := gatesByOutput[g.Output]; dup {
			return nil, nil, nil, fmt.Errorf("%w: netlist: cell %q: wire %s has two drivers",
				circuit.ErrStructural, name, g.Output)
		}
		gatesByOutput[g.Output] = g
	}

	order, err := toposort(gatesByOutput, outputWires)
	if err != nil {
		return nil, nil, nil, err
	}

	var maxWire circuit.Wire
	for w := range gatesByOutput {
		if w > maxWire {
			maxWire = w
		}
	}
	for w := range isPrimaryInput {
		if w > maxWire {
			maxWire = w
		}
	}

	c := &circuit.Circuit{
		WireCount:      int(maxWire) + 1,
		Gates:          order,
		PrimaryInputs:  sortedWires(isPrimaryInput),
		PrimaryOutputs: outputWires,
	}
	return c, inputs, outputs, nil
}

// toposort performs a depth-first post-order visit from each primary
// output wire, following a gate's inputs before appending the gate
// itself.
func toposort(gatesByOutput map[circuit.Wire]circuit.Gate, outputs []circuit.Wire) ([]circuit.Gate, error) {
	visited := make(map[circuit.Wire]bool, len(gatesByOutput))
	visiting := make(map[circuit.Wire]bool)
	order := make([]circuit.Gate, 0, len(gatesByOutput))

	var visit func(w circuit.Wire) error
	visit = func(w circuit.Wire) error {
		if visited[w] {
			return nil
		}
		g, ok := gatesByOutput[w]
		if !ok {
			// A primary input, or a wire with no driver at all.
			visited[w] = true
			return nil
		}
		if visiting[w] {
			return fmt.Errorf("%w: combinational cycle through wire %s", circuit.ErrStructural, w)
		}
		visiting[w] = true
		for _, in := range g.Inputs() {
			if err := visit(in); err != nil {
				return err
			}
		}
		visiting[w] = false
		visited[w] = true
		order = append(order, g)
		return nil
	}

	for _, w := range outputs {
		if err := visit(w); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedWires(m map[circuit.Wire]bool) []circuit.Wire {
	wires := make([]circuit.Wire, 0, len(m))
	for w := range m {
		wires = append(wires, w)
	}
	sort.Slice(wires, func(i, j int) bool { return wires[i] < wires[j] })
	return wires
}

// PackBus spreads value's bits onto bits in little-endian order (bits[0]
// is the least significant bit), the inverse of UnpackBus. It is how a
// caller turns a port's declared wires and a Go integer into the
// per-wire input map circuit.Circuit.Reference and circuit.Evaluate
// expect.
func PackBus(bits []circuit.Wire, value uint64) map[circuit.Wire]int {
	out := make(map[circuit.Wire]int, len(bits))
	for i, w := range bits {
		out[w] = int((value >> uint(i)) & 1)
	}
	return out
}

// UnpackBus reassembles a little-endian bus of wires into a Go integer
// from a decoded-bit map such as the one circuit.Evaluate or
// circuit.Circuit.Reference returns.
func UnpackBus(bits []circuit.Wire, values map[circuit.Wire]int) uint64 {
	var v uint64
	for i, w := range bits {
		if values[w] != 0 {
			v |= 1 << uint(i)
		}
	}
	return v
}
