// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the client-side cryptography of the vault.
//
// The scheme is deliberately small:
//
//	salt     = GenerateSalt()                       16 random bytes, once per user
//	key      = DeriveKey(masterPassword, salt)      PBKDF2-HMAC-SHA256, 100k rounds
//	envelope = Encrypt(json(entryFields), key)      AES-256-CBC, fresh IV per call
//
// Neither the master password nor the key ever leave the client.
package crypto

import "github.com/MKhiriev/secure-vault/models"

// RandomSource supplies cryptographically secure random bytes.
type RandomSource interface {
	// Bytes returns n fresh random bytes.
	Bytes(n int) ([]byte, error)

	// Uint32s returns n independent uniformly distributed 32-bit values.
	Uint32s(n int) ([]uint32, error)
}

// KeyDeriver turns a master password and salt into a symmetric key.
type KeyDeriver interface {
	// GenerateSalt returns a new random salt of SaltSize bytes.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a KeySize-byte key. The same inputs always give the
	// same key.
	DeriveKey(masterPassword string, salt []byte, params KDFParams) (Key, error)
}

// Cipher seals and opens entry payloads under a derived key.
type Cipher interface {
	// Encrypt encrypts plaintext with a freshly generated IV.
	Encrypt(plaintext []byte, key Key) (models.EncryptedResult, error)

	// Decrypt reverses Encrypt. Any failure is reported as ErrDecryption.
	Decrypt(data, iv string, key Key) ([]byte, error)
}
