//
// errors.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package circuit

import "errors"

// Each error class is a distinct sentinel so callers can distinguish
// them with errors.Is; wrapped errors add the offending wire/gate/row
// with fmt.Errorf("...: %w", ...).
var (
	// ErrStructural covers arity mismatch, unknown wire, double driver,
	// unknown gate type, malformed netlist, and non-DAG input.
	ErrStructural = errors.New("circuit: structural error")

	// ErrInput covers a provided input label matching neither label of
	// its wire, a missing primary input, or a duplicated input.
	ErrInput = errors.New("circuit: input error")

	// ErrDecryptionMismatch signals that no row of a non-XOR garbled gate
	// decrypted successfully. Fatal for the evaluation session: the
	// garbling must be redone from a fresh delta.
	ErrDecryptionMismatch = errors.New("circuit: decryption mismatch")

	// ErrOutputLabelMismatch signals that a computed output wire label
	// matched neither of the two labels known for that output wire.
	// Fatal for the evaluation session.
	ErrOutputLabelMismatch = errors.New("circuit: output label mismatch")

	// ErrCrypto wraps an unexpected failure from the underlying AEAD
	// primitive during encryption (not an authentication failure during
	// decryption; that is ErrDecryptionMismatch).
	ErrCrypto = errors.New("circuit: crypto error")
)
