// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Key derivation defaults written into every new CryptoConfig.
const (
	DefaultKDFIterations = 100_000
	DefaultKDFHash       = "SHA-256"
)

// EncryptedResult is the output of a single envelope encryption.
// Both parts are base64 (standard alphabet, padded).
type EncryptedResult struct {
	Data string `json:"data"`
	IV   string `json:"iv"`
}

// CryptoConfig is stored once per user under users/{uid}/config/crypto.
// It holds everything needed to re-derive the vault key from the master
// password, and nothing that would reveal it.
type CryptoConfig struct {
	// Salt is the base64 encoding of 16 random bytes generated at sign-up.
	Salt string `json:"salt"`

	// Iterations is the PBKDF2 iteration count used for this vault.
	// Zero means the legacy default of 100000.
	Iterations int `json:"iterations,omitempty"`

	// Hash names the PBKDF2 pseudorandom function. Empty means "SHA-256".
	Hash string `json:"hash,omitempty"`

	// Verifier is a known plaintext encrypted under the vault key at
	// sign-up. Vaults created before it existed leave it nil.
	Verifier *EncryptedResult `json:"verifier,omitempty"`
}

// WithDefaults returns a copy with the legacy KDF parameters filled in.
func (c CryptoConfig) WithDefaults() CryptoConfig {
	if c.Iterations == 0 {
		c.Iterations = DefaultKDFIterations
	}
	if c.Hash == "" {
		c.Hash = DefaultKDFHash
	}
	return c
}
