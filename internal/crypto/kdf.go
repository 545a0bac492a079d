// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/secure-vault/models"
)

// Sizes used by the vault scheme.
const (
	SaltSize = 16 // bytes, 128 bits
	KeySize  = 32 // bytes, AES-256
	IVSize   = 16 // bytes, AES block size
)

// MinIterations is the lowest PBKDF2 round count DeriveKey accepts.
const MinIterations = 100_000

// Key is raw symmetric key material. It lives in memory only.
type Key []byte

// Zero overwrites the key material in place.
func (k Key) Zero() {
	for i := range k {
		k[i] = 0
	}
}

// Equal compares two keys in constant time.
func (k Key) Equal(other Key) bool {
	return subtle.ConstantTimeCompare(k, other) == 1
}

// KDFParams selects the PBKDF2 variant. They are stored next to the salt so
// a vault stays decryptable if the defaults are raised later.
type KDFParams struct {
	Iterations int
	Hash       string
}

// DefaultKDFParams returns the parameters used for new vaults.
func DefaultKDFParams() KDFParams {
	return KDFParams{Iterations: models.DefaultKDFIterations, Hash: models.DefaultKDFHash}
}

// KDFParamsFromConfig extracts the KDF parameters recorded in cfg, falling
// back to the legacy defaults for vaults that predate them.
func KDFParamsFromConfig(cfg models.CryptoConfig) KDFParams {
	cfg = cfg.WithDefaults()
	return KDFParams{Iterations: cfg.Iterations, Hash: cfg.Hash}
}

// pbkdf2Deriver is the private implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	random RandomSource
}

// NewKeyDeriver constructs a PBKDF2-HMAC-SHA256 [KeyDeriver]. random is
// used only for salt generation.
func NewKeyDeriver(random RandomSource) KeyDeriver {
	return &pbkdf2Deriver{random: random}
}

// GenerateSalt implements [KeyDeriver].
func (d *pbkdf2Deriver) GenerateSalt() ([]byte, error) {
	return d.random.Bytes(SaltSize)
}

// DeriveKey implements [KeyDeriver]. It fails with ErrKeyDerivation on an
// empty password, a salt that is not SaltSize bytes, a hash other than
// SHA-256 or an iteration count below MinIterations.
func (d *pbkdf2Deriver) DeriveKey(masterPassword string, salt []byte, params KDFParams) (Key, error) {
	if masterPassword == "" {
		return nil, fmt.Errorf("%w: empty master password", ErrKeyDerivation)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrKeyDerivation, SaltSize, len(salt))
	}
	if params.Hash != models.DefaultKDFHash {
		return nil, fmt.Errorf("%w: unsupported hash %q", ErrKeyDerivation, params.Hash)
	}
	if params.Iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d iterations is below the minimum of %d", ErrKeyDerivation, params.Iterations, MinIterations)
	}

	return pbkdf2.Key([]byte(masterPassword), salt, params.Iterations, KeySize, sha256.New), nil
}
