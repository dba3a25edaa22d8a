//
// main.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

// Command yaogc runs a handful of named end-to-end garbled-circuit
// scenarios and evaluates ad hoc synthesized netlists against named word
// inputs. It plays, locally and in a single process, the role of the
// external collaborator that would otherwise distribute both parties'
// input labels, so the whole construction can be exercised without a
// network.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/boolcircuit/yaogc/circuit"
	"github.com/boolcircuit/yaogc/label"
	"github.com/boolcircuit/yaogc/netlist"
)

func main() {
	scenarioName := flag.String("scenario", "", "Named scenario to run (and, and0, xor, nor, adder1, mul32)")
	netlistPath := flag.String("netlist", "", "Synthesized netlist file to import and evaluate")
	inputsArg := flag.String("inputs", "", "Comma-separated name=value inputs for -netlist, e.g. a=123,b=123")
	table := flag.Bool("table", false, "Print a gate-type histogram instead of evaluating")
	verbose := flag.Bool("v", false, "Verbose timing output")
	flag.Parse()

	var c *circuit.Circuit
	var inputs map[circuit.Wire]int
	var format func(map[circuit.Wire]int) string
	var err error

	switch {
	case *scenarioName != "":
		c, inputs, format, err = runNamedScenario(*scenarioName)
	case *netlistPath != "":
		c, inputs, format, err = runNetlist(*netlistPath, *inputsArg)
	default:
		fmt.Fprintln(os.Stderr, "usage: yaogc -scenario <name> | -netlist <path> -inputs a=1,b=2 [-table] [-v]")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *table {
		c.PrintStats(os.Stdout)
		return
	}

	fmt.Printf("Circuit: %v\n", c)

	start := time.Now()
	garbled, err := circuit.Garble(c, rand.Reader)
	if err != nil {
		log.Fatal(err)
	}
	garbleTime := time.Since(start)

	start = time.Now()
	outputs, err := evaluateWithInputs(c, garbled, inputs)
	if err != nil {
		log.Fatal(err)
	}
	evalTime := time.Since(start)

	fmt.Println(format(outputs))
	if *verbose {
		fmt.Printf("Garble:\t%s\n", garbleTime)
		fmt.Printf("Evaluate:\t%s\n", evalTime)
	}
}

func runNamedScenario(name string) (*circuit.Circuit, map[circuit.Wire]int,
	func(map[circuit.Wire]int) string, error) {

	s, ok := scenarios()[name]
	if !ok {
		return nil, nil, nil, fmt.Errorf("unknown scenario %q", name)
	}
	fmt.Printf("Scenario %s: %s\n", s.Name, s.Description)
	return s.Build()
}

func runNetlist(path, inputsArg string) (*circuit.Circuit, map[circuit.Wire]int,
	func(map[circuit.Wire]int) string, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	c, ports, outputs, err := netlist.Parse(f)
	if err != nil {
		return nil, nil, nil, err
	}

	values, err := parseNamedInputs(inputsArg)
	if err != nil {
		return nil, nil, nil, err
	}

	bits := make(map[circuit.Wire]int)
	for name, value := range values {
		bus, ok := ports[name]
		if !ok {
			return nil, nil, nil, fmt.Errorf("netlist %s: no input port %q", path, name)
		}
		for w, v := range netlist.PackBus(bus, value) {
			bits[w] = v
		}
	}

	format := func(o map[circuit.Wire]int) string {
		var parts []string
		for name, bus := range outputs {
			parts = append(parts, fmt.Sprintf("%s=%d", name, netlist.UnpackBus(bus, o)))
		}
		return strings.Join(parts, " ")
	}
	return c, bits, format, nil
}

// parseNamedInputs parses a "name=value,name=value" argument into a
// name-to-value map, the CLI encoding for -inputs.
func parseNamedInputs(arg string) (map[string]uint64, error) {
	values := make(map[string]uint64)
	if arg == "" {
		return values, nil
	}
	for _, pair := range strings.Split(arg, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed -inputs entry %q, want name=value", pair)
		}
		v, err := strconv.ParseUint(kv[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed -inputs value %q: %w", pair, err)
		}
		values[kv[0]] = v
	}
	return values, nil
}

// evaluateWithInputs translates the caller's plain-bit input map into the
// input labels circuit.Evaluate expects, standing in for the garbler
// sending input labels to the evaluator over a network.
func evaluateWithInputs(c *circuit.Circuit, garbled *circuit.Garbled,
	inputs map[circuit.Wire]int) (map[circuit.Wire]int, error) {

	evalInputs := make(map[circuit.Wire]label.Label, len(inputs))
	for w, bit := range inputs {
		pair, ok := garbled.InputLabels[w]
		if !ok {
			return nil, fmt.Errorf("wire %s is not a primary input of this garbling", w)
		}
		evalInputs[w] = pair.ForBit(bit)
	}
	return circuit.Evaluate(c, garbled, evalInputs)
}
