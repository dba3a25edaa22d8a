//
// netlist_test.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package netlist

import (
	"crypto/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boolcircuit/yaogc/circuit"
	"github.com/boolcircuit/yaogc/label"
)

const halfAdderJSON = `{
  "modules": {
    "half_adder": {
      "ports": {
        "a": {"direction": "input", "bits": [2]},
        "b": {"direction": "input", "bits": [3]},
        "sum": {"direction": "output", "bits": [4]},
        "carry": {"direction": "output", "bits": [5]}
      },
      "cells": {
        "c0": {"type": "$_XOR_", "connections": {"A": [2], "B": [3], "Y": [4]}},
        "c1": {"type": "$_AND_", "connections": {"A": [2], "B": [3], "Y": [5]}}
      }
    }
  }
}`

func TestParseHalfAdder(t *testing.T) {
	c, inputs, outputs, err := Parse(strings.NewReader(halfAdderJSON))
	require.NoError(t, err)
	require.Len(t, c.Gates, 2)
	require.Len(t, inputs["a"], 1)
	require.Len(t, inputs["b"], 1)
	require.Len(t, outputs["sum"], 1)
	require.Len(t, outputs["carry"], 1)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			in := map[circuit.Wire]int{inputs["a"][0]: a, inputs["b"][0]: b}
			got, err := c.Reference(in)
			require.NoError(t, err)
			require.Equal(t, a^b, got[outputs["sum"][0]], "sum(%d,%d)", a, b)
			require.Equal(t, a&b, got[outputs["carry"][0]], "carry(%d,%d)", a, b)
		}
	}
}

func TestParseRejectsUnknownCellType(t *testing.T) {
	doc := `{"modules":{"m":{"ports":{},"cells":{"c0":{"type":"$_MUX_","connections":{"A":[2],"B":[3],"S":[4],"Y":[5]}}}}}}`
	_, _, _, err := Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrUnsupportedCell)
}

func TestParseRejectsConstantNet(t *testing.T) {
	doc := `{"modules":{"m":{"ports":{"a":{"direction":"input","bits":[0]}},"cells":{}}}}`
	_, _, _, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParseRejectsMultipleModules(t *testing.T) {
	doc := `{"modules":{"m1":{"ports":{},"cells":{}},"m2":{"ports":{},"cells":{}}}}`
	_, _, _, err := Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrModuleCount)
}

// A 32-bit unsigned multiplier imported from a synthesized netlist,
// 123*123 = 15129.
func TestParseMul32GarbleEvaluate(t *testing.T) {
	f, err := os.Open("../testdata/mul32.json")
	require.NoError(t, err)
	defer f.Close()

	c, inputs, outputs, err := Parse(f)
	require.NoError(t, err)

	cases := []struct{ a, b, want uint64 }{
		{123, 123, 15129},
		{0, 12345, 0},
		{1, 1, 1},
		{0xffffffff, 2, 0xfffffffe},
	}

	for _, tc := range cases {
		plain, err := c.Reference(mergeMaps(
			PackBus(inputs["a"], tc.a),
			PackBus(inputs["b"], tc.b)))
		require.NoError(t, err)
		require.Equal(t, tc.want, UnpackBus(outputs["y"], plain), "reference %d*%d", tc.a, tc.b)
	}

	g, err := circuit.Garble(c, rand.Reader)
	require.NoError(t, err)

	tc := cases[0]
	bits := mergeMaps(PackBus(inputs["a"], tc.a), PackBus(inputs["b"], tc.b))
	evalInputs := make(map[circuit.Wire]label.Label, len(bits))
	for w, bit := range bits {
		evalInputs[w] = g.InputLabels[w].ForBit(bit)
	}

	result, err := circuit.Evaluate(c, g, evalInputs)
	require.NoError(t, err)
	require.Equal(t, tc.want, UnpackBus(outputs["y"], result), "garbled %d*%d", tc.a, tc.b)
}

func mergeMaps(maps ...map[circuit.Wire]int) map[circuit.Wire]int {
	out := make(map[circuit.Wire]int)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
