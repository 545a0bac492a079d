// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MKhiriev/secure-vault/models"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kd := NewKeyDeriver(NewRandomSource())

	s1, err := kd.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kd.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kd := NewKeyDeriver(NewRandomSource())
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := kd.DeriveKey("correct horse battery staple", salt, DefaultKDFParams())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kd.DeriveKey("correct horse battery staple", salt, DefaultKDFParams())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !k1.Equal(k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}
}

func TestDeriveKey_DiffersBySaltAndPassword(t *testing.T) {
	kd := NewKeyDeriver(NewRandomSource())
	saltA := bytes.Repeat([]byte{0x01}, SaltSize)
	saltB := bytes.Repeat([]byte{0x02}, SaltSize)

	base, err := kd.DeriveKey("master-password", saltA, DefaultKDFParams())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	otherSalt, err := kd.DeriveKey("master-password", saltB, DefaultKDFParams())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	otherPassword, err := kd.DeriveKey("master-passwore", saltA, DefaultKDFParams())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if base.Equal(otherSalt) {
		t.Fatalf("different salts produced the same key")
	}
	if base.Equal(otherPassword) {
		t.Fatalf("different passwords produced the same key")
	}
}

// Vaults created before KDF parameters were recorded must derive the same key.
func TestDeriveKey_LegacyConfigMatchesDefaults(t *testing.T) {
	kd := NewKeyDeriver(NewRandomSource())
	salt := []byte("0123456789abcdef")

	k, err := kd.DeriveKey("password", salt, DefaultKDFParams())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	again, err := kd.DeriveKey("password", salt, KDFParamsFromConfig(models.CryptoConfig{}))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if !k.Equal(again) {
		t.Fatalf("legacy config parameters derive a different key")
	}
}

func TestDeriveKey_RejectsBadInput(t *testing.T) {
	kd := NewKeyDeriver(NewRandomSource())
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	tests := []struct {
		name     string
		password string
		salt     []byte
		params   KDFParams
	}{
		{name: "empty password", password: "", salt: salt, params: DefaultKDFParams()},
		{name: "short salt", password: "pw", salt: salt[:8], params: DefaultKDFParams()},
		{name: "unknown hash", password: "pw", salt: salt, params: KDFParams{Iterations: MinIterations, Hash: "SHA-1"}},
		{name: "too few iterations", password: "pw", salt: salt, params: KDFParams{Iterations: 1000, Hash: models.DefaultKDFHash}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kd.DeriveKey(tt.password, tt.salt, tt.params)
			if !errors.Is(err, ErrKeyDerivation) {
				t.Fatalf("err = %v, want ErrKeyDerivation", err)
			}
		})
	}
}

func TestKey_Zero(t *testing.T) {
	k := Key(bytes.Repeat([]byte{0xFF}, KeySize))
	k.Zero()
	if !bytes.Equal(k, make([]byte, KeySize)) {
		t.Fatalf("key not zeroed: %x", []byte(k))
	}
}
