// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/secure-vault/models"
)

// cbcCipher is the private implementation of [Cipher]: AES-256 in CBC mode
// with PKCS#7 padding.
type cbcCipher struct {
	random RandomSource
}

// NewCipher constructs an AES-CBC [Cipher]. random supplies the IVs.
func NewCipher(random RandomSource) Cipher {
	return &cbcCipher{random: random}
}

// Encrypt implements [Cipher]. Every call draws a fresh 16-byte IV, so
// encrypting the same plaintext twice yields different ciphertexts. Both
// outputs are standard padded base64.
func (c *cbcCipher) Encrypt(plaintext []byte, key Key) (models.EncryptedResult, error) {
	// 1. Build AES block from key
	block, err := aes.NewCipher(key)
	if err != nil {
		return models.EncryptedResult{}, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	// 2. Fresh IV
	iv, err := c.random.Bytes(IVSize)
	if err != nil {
		return models.EncryptedResult{}, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	// 3. Pad and encrypt in place
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(padded, padded)

	return models.EncryptedResult{
		Data: base64.StdEncoding.EncodeToString(padded),
		IV:   base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt implements [Cipher]. It base64-decodes data and iv, decrypts with
// key and strips the padding. The plaintext must be valid UTF-8. Any failure
// (bad base64, wrong IV length, wrong key, bad padding) is reported as
// ErrDecryption and the caller cannot tell them apart.
func (c *cbcCipher) Decrypt(data, iv string, key Key) ([]byte, error) {
	// 1. Decode base64 parts
	ciphertext, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode data: %w", ErrDecryption, err)
	}
	rawIV, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %w", ErrDecryption, err)
	}
	if len(rawIV) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes", ErrDecryption, IVSize)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrDecryption)
	}

	// 2. Build AES block from key
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	// 3. Decrypt and unpad
	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, rawIV).CryptBlocks(plain, ciphertext)

	plain, err = pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(plain) {
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryption)
	}

	return plain, nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryption)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryption)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrDecryption)
		}
	}
	return b[:len(b)-n], nil
}
