// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/secure-vault/models"
)

// verifierPlaintext is the known value sealed into CryptoConfig.Verifier.
const verifierPlaintext = "secure-vault/verifier/v1"

// NewVerifier encrypts the known verifier plaintext under key. The result is
// stored next to the salt so a wrong master password can be rejected before
// any entry is touched.
func NewVerifier(c Cipher, key Key) (models.EncryptedResult, error) {
	return c.Encrypt([]byte(verifierPlaintext), key)
}

// CheckVerifier returns nil if v decrypts to the verifier plaintext under
// key, and an error wrapping ErrDecryption otherwise.
func CheckVerifier(c Cipher, key Key, v models.EncryptedResult) error {
	plain, err := c.Decrypt(v.Data, v.IV, key)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(plain, []byte(verifierPlaintext)) != 1 {
		return fmt.Errorf("%w: verifier mismatch", ErrDecryption)
	}
	return nil
}
