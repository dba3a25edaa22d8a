//
// scenarios.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/boolcircuit/yaogc/circuit"
	"github.com/boolcircuit/yaogc/netlist"
)

// scenario bundles one named end-to-end test. Build returns the circuit
// to garble, the concrete input bits to supply, and a formatter that
// turns the decoded output bits into a result line. These are returned
// together, rather than as a separate field, since a netlist import
// (mul32) only learns its output wires once Build has run.
type scenario struct {
	Name        string
	Description string
	Build       func() (c *circuit.Circuit, inputs map[circuit.Wire]int,
		format func(outputs map[circuit.Wire]int) string, err error)
}

func scenarios() map[string]scenario {
	list := []scenario{
		scenarioAnd(),
		scenarioAnd0(),
		scenarioXor(),
		scenarioNor(),
		scenarioAdder1(),
		scenarioMul32(),
	}
	m := make(map[string]scenario, len(list))
	for _, s := range list {
		m[s.Name] = s
	}
	return m
}

// scenarioAnd is scenario A: AND(1,1) = 1.
func scenarioAnd() scenario {
	b := circuit.NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	out, err := b.NewGate(circuit.AND, x, y)
	if err != nil {
		panic(err)
	}
	c := b.Build()
	format := func(o map[circuit.Wire]int) string { return fmt.Sprintf("result = %d", o[out]) }
	return scenario{
		Name:        "and",
		Description: "AND(1,1) = 1",
		Build: func() (*circuit.Circuit, map[circuit.Wire]int, func(map[circuit.Wire]int) string, error) {
			return c, map[circuit.Wire]int{x: 1, y: 1}, format, nil
		},
	}
}

// scenarioAnd0 is scenario B: AND(1,0) = 0.
func scenarioAnd0() scenario {
	b := circuit.NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	out, err := b.NewGate(circuit.AND, x, y)
	if err != nil {
		panic(err)
	}
	c := b.Build()
	format := func(o map[circuit.Wire]int) string { return fmt.Sprintf("result = %d", o[out]) }
	return scenario{
		Name:        "and0",
		Description: "AND(1,0) = 0",
		Build: func() (*circuit.Circuit, map[circuit.Wire]int, func(map[circuit.Wire]int) string, error) {
			return c, map[circuit.Wire]int{x: 1, y: 0}, format, nil
		},
	}
}

// scenarioXor is scenario C: XOR(0,1) = 1.
func scenarioXor() scenario {
	b := circuit.NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	out, err := b.NewGate(circuit.XOR, x, y)
	if err != nil {
		panic(err)
	}
	c := b.Build()
	format := func(o map[circuit.Wire]int) string { return fmt.Sprintf("result = %d", o[out]) }
	return scenario{
		Name:        "xor",
		Description: "XOR(0,1) = 1",
		Build: func() (*circuit.Circuit, map[circuit.Wire]int, func(map[circuit.Wire]int) string, error) {
			return c, map[circuit.Wire]int{x: 0, y: 1}, format, nil
		},
	}
}

// scenarioNor is scenario D: NOR(0,0) = 1.
func scenarioNor() scenario {
	b := circuit.NewBuilder()
	x := b.NewWire()
	y := b.NewWire()
	out, err := b.NewGate(circuit.NOR, x, y)
	if err != nil {
		panic(err)
	}
	c := b.Build()
	format := func(o map[circuit.Wire]int) string { return fmt.Sprintf("result = %d", o[out]) }
	return scenario{
		Name:        "nor",
		Description: "NOR(0,0) = 1",
		Build: func() (*circuit.Circuit, map[circuit.Wire]int, func(map[circuit.Wire]int) string, error) {
			return c, map[circuit.Wire]int{x: 0, y: 0}, format, nil
		},
	}
}

// scenarioAdder1 is scenario E: a 1-bit full adder, 0+1+0 = sum 1, carry 0.
func scenarioAdder1() scenario {
	b := circuit.NewBuilder()
	a := b.NewWire()
	bw := b.NewWire()
	cin := b.NewWire()
	sum, carry, err := circuit.BuildFullAdder(b, a, bw, cin)
	if err != nil {
		panic(err)
	}
	c := b.Build()
	format := func(o map[circuit.Wire]int) string {
		return fmt.Sprintf("sum = %d, carry = %d", o[sum], o[carry])
	}
	return scenario{
		Name:        "adder1",
		Description: "fullAdder(0,1,0): sum = 1, carry = 0",
		Build: func() (*circuit.Circuit, map[circuit.Wire]int, func(map[circuit.Wire]int) string, error) {
			return c, map[circuit.Wire]int{a: 0, bw: 1, cin: 0}, format, nil
		},
	}
}

// scenarioMul32 is scenario F: a 32-bit unsigned multiplier imported from
// testdata/mul32.json, 123*123 = 15129.
func scenarioMul32() scenario {
	return scenario{
		Name:        "mul32",
		Description: "mul32(123, 123) = 15129 (low 32 bits)",
		Build: func() (*circuit.Circuit, map[circuit.Wire]int, func(map[circuit.Wire]int) string, error) {
			f, err := os.Open("testdata/mul32.json")
			if err != nil {
				return nil, nil, nil, fmt.Errorf("scenario mul32: %w", err)
			}
			defer f.Close()

			c, inputs, outputs, err := netlist.Parse(f)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("scenario mul32: %w", err)
			}

			bits := make(map[circuit.Wire]int, len(inputs["a"])+len(inputs["b"]))
			for w, v := range netlist.PackBus(inputs["a"], 123) {
				bits[w] = v
			}
			for w, v := range netlist.PackBus(inputs["b"], 123) {
				bits[w] = v
			}
			y := outputs["y"]
			format := func(o map[circuit.Wire]int) string {
				return fmt.Sprintf("result = %d", netlist.UnpackBus(y, o))
			}
			return c, bits, format, nil
		},
	}
}
