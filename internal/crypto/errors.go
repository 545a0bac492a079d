// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the crypto primitives. Callers match them with
// [errors.Is]; causes are attached with %w.
var (
	// ErrKeyDerivation is returned when a key cannot be derived: empty
	// master password, malformed salt or unsupported KDF parameters.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrDecryption covers every decryption failure. A wrong key and a
	// corrupted envelope are indistinguishable on purpose.
	ErrDecryption = errors.New("decryption failed: invalid master password or corrupted data")

	// ErrEncryption is returned when plaintext cannot be sealed, usually
	// because the key has the wrong size.
	ErrEncryption = errors.New("encryption failed")

	// ErrRandomSource is returned when the random source cannot supply
	// the requested number of bytes.
	ErrRandomSource = errors.New("random source failure")
)
