//
// aead.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package label

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrAuthFailed is returned by Decrypt when the ciphertext does not
// authenticate under the given key. This is the only signal the
// evaluator uses to pick the single decrypting row of a garbled gate.
// It must fail with overwhelming probability for any key other than the
// one used to encrypt.
var ErrAuthFailed = errors.New("label: authentication failed")

// Encrypt seals msg under key with a fresh random nonce embedded in the
// returned ciphertext. msg may be of any length, and the ciphertext is
// longer than msg by the nonce plus the AEAD's authentication tag, so
// callers that nest Encrypt calls (the garbler's two-input gate rows)
// must expect the outer ciphertext to grow accordingly.
func Encrypt(key Label, msg []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("label: new aead: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("label: nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, msg, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt under key, returning
// ErrAuthFailed (wrapped) if it does not authenticate, either because it
// was produced under a different key or because it is corrupted.
func Decrypt(key Label, ct []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("label: new aead: %w", err)
	}
	if len(ct) < aead.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrAuthFailed)
	}
	nonce, sealed := ct[:aead.NonceSize()], ct[aead.NonceSize():]
	pt, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return pt, nil
}

// EncryptLabel seals a label payload, the common case used by
// circuit.Garble to encrypt a wire's output label under one of its
// gate's input labels.
func EncryptLabel(key Label, msg Label) ([]byte, error) {
	return Encrypt(key, msg.Bytes())
}

// DecryptLabel opens a ciphertext produced by EncryptLabel.
func DecryptLabel(key Label, ct []byte) (Label, error) {
	pt, err := Decrypt(key, ct)
	if err != nil {
		return Label{}, err
	}
	return FromBytes(pt)
}
