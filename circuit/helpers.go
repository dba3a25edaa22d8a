//
// helpers.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package circuit

// BuildFullAdder appends a 1-bit full adder to b: sum = a xor bw xor cin,
// carry = majority(a, bw, cin). Shared between the CLI demo app and this
// package's own tests.
func BuildFullAdder(b *Builder, a, bw, cin Wire) (sum, carry Wire, err error) {
	axb, err := b.NewGate(XOR, a, bw)
	if err != nil {
		return 0, 0, err
	}
	sum, err = b.NewGate(XOR, axb, cin)
	if err != nil {
		return 0, 0, err
	}

	ab, err := b.NewGate(AND, a, bw)
	if err != nil {
		return 0, 0, err
	}
	axbAndCin, err := b.NewGate(AND, axb, cin)
	if err != nil {
		return 0, 0, err
	}
	carry, err = b.NewGate(OR, ab, axbAndCin)
	if err != nil {
		return 0, 0, err
	}
	return sum, carry, nil
}
