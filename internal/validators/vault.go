// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"net/mail"
	"strings"

	"github.com/MKhiriev/secure-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the sign-in email of Credentials.
	FieldEmail = "email"

	// FieldPassword targets the account password of Credentials.
	FieldPassword = "password"

	// FieldEncryptedData targets EntryRecord.EncryptedData.
	FieldEncryptedData = "encrypted_data"

	// FieldIV targets EntryRecord.IV.
	FieldIV = "iv"

	// FieldTags targets EntryRecord.Tags.
	FieldTags = "tags"

	// FieldSalt targets CryptoConfig.Salt.
	FieldSalt = "salt"

	// FieldIterations targets CryptoConfig.Iterations.
	FieldIterations = "iterations"

	// FieldHash targets CryptoConfig.Hash.
	FieldHash = "hash"

	// FieldVerifier targets CryptoConfig.Verifier.
	FieldVerifier = "verifier"
)

// Sizes the server can check without ever seeing plaintext.
const (
	saltSize      = 16
	ivSize        = 16
	minIterations = models.DefaultKDFIterations
)

// VaultValidator implements Validator for Credentials, EntryRecord and
// CryptoConfig. It only checks shape: the server cannot and does not look
// inside ciphertext.
type VaultValidator struct {
}

// NewVaultValidator constructs a VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches to the type-specific check. Pointer and value forms are
// both accepted.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.EntryRecord:
		return v.validateEntryRecord(ctx, value, fields...)
	case *models.EntryRecord:
		return v.validateEntryRecord(ctx, *value, fields...)

	case models.CryptoConfig:
		return v.validateCryptoConfig(ctx, value, fields...)
	case *models.CryptoConfig:
		return v.validateCryptoConfig(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			addr, err := mail.ParseAddress(c.Email)
			if err != nil || addr.Address != c.Email {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateEntryRecord(_ context.Context, rec models.EntryRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEncryptedData, FieldIV, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldEncryptedData:
			if rec.EncryptedData == "" {
				return ErrEmptyCiphertext
			}
			if _, err := base64.StdEncoding.DecodeString(rec.EncryptedData); err != nil {
				return ErrEmptyCiphertext
			}
		case FieldIV:
			if !isBase64OfSize(rec.IV, ivSize) {
				return ErrInvalidIV
			}
		case FieldTags:
			for _, tag := range rec.Tags {
				if strings.TrimSpace(tag) == "" {
					return ErrInvalidTag
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateCryptoConfig(_ context.Context, cfg models.CryptoConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSalt, FieldIterations, FieldHash, FieldVerifier}
	}

	for _, f := range fields {
		switch f {
		case FieldSalt:
			if !isBase64OfSize(cfg.Salt, saltSize) {
				return ErrInvalidSalt
			}
		case FieldIterations:
			// zero is a legacy config and means the default
			if cfg.Iterations != 0 && cfg.Iterations < minIterations {
				return ErrTooFewRounds
			}
		case FieldHash:
			if cfg.Hash != "" && cfg.Hash != models.DefaultKDFHash {
				return ErrInvalidKDFHash
			}
		case FieldVerifier:
			if cfg.Verifier == nil {
				continue
			}
			if cfg.Verifier.Data == "" || !isBase64OfSize(cfg.Verifier.IV, ivSize) {
				return ErrInvalidVerifier
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBase64OfSize(s string, size int) bool {
	raw, err := base64.StdEncoding.DecodeString(s)
	return err == nil && len(raw) == size
}
