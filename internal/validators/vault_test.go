// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func b64(n int) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", n)))
}

func validRecord() models.EntryRecord {
	return models.EntryRecord{EncryptedData: b64(32), IV: b64(16), Tags: []string{"work"}}
}

func validConfig() models.CryptoConfig {
	return models.CryptoConfig{
		Salt:       b64(16),
		Iterations: 100_000,
		Hash:       "SHA-256",
		Verifier:   &models.EncryptedResult{Data: b64(32), IV: b64(16)},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewVaultValidator(t *testing.T) {
	require.NotNil(t, NewVaultValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewVaultValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerForms(t *testing.T) {
	v := NewVaultValidator()
	rec := validRecord()
	cfg := validConfig()
	creds := models.Credentials{Email: "a@b.io", Password: "pw"}

	assert.NoError(t, v.Validate(context.Background(), &rec))
	assert.NoError(t, v.Validate(context.Background(), &cfg))
	assert.NoError(t, v.Validate(context.Background(), &creds))
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewVaultValidator().Validate(context.Background(), validRecord(), "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{"valid", models.Credentials{Email: "user@example.com", Password: "secret"}, nil},
		{"empty email", models.Credentials{Password: "secret"}, ErrInvalidEmail},
		{"no at sign", models.Credentials{Email: "user.example.com", Password: "secret"}, ErrInvalidEmail},
		{"display name form", models.Credentials{Email: "User <user@example.com>", Password: "secret"}, ErrInvalidEmail},
		{"empty password", models.Credentials{Email: "user@example.com"}, ErrEmptyPassword},
	}

	v := NewVaultValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Credentials_FieldScoping(t *testing.T) {
	// only the email is checked, so the missing password is ignored
	err := NewVaultValidator().Validate(context.Background(), models.Credentials{Email: "a@b.io"}, FieldEmail)
	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// EntryRecord
// ---------------------------------------------------------------------------

func TestValidate_EntryRecord(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.EntryRecord)
		wantErr error
	}{
		{"valid", func(*models.EntryRecord) {}, nil},
		{"nil tags", func(r *models.EntryRecord) { r.Tags = nil }, nil},
		{"empty data", func(r *models.EntryRecord) { r.EncryptedData = "" }, ErrEmptyCiphertext},
		{"data not base64", func(r *models.EntryRecord) { r.EncryptedData = "%%%" }, ErrEmptyCiphertext},
		{"empty iv", func(r *models.EntryRecord) { r.IV = "" }, ErrInvalidIV},
		{"short iv", func(r *models.EntryRecord) { r.IV = b64(8) }, ErrInvalidIV},
		{"blank tag", func(r *models.EntryRecord) { r.Tags = []string{"ok", "  "} }, ErrInvalidTag},
	}

	v := NewVaultValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)
			err := v.Validate(context.Background(), rec)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// CryptoConfig
// ---------------------------------------------------------------------------

func TestValidate_CryptoConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CryptoConfig)
		wantErr error
	}{
		{"valid", func(*models.CryptoConfig) {}, nil},
		{"legacy zero params", func(c *models.CryptoConfig) { c.Iterations = 0; c.Hash = "" }, nil},
		{"no verifier", func(c *models.CryptoConfig) { c.Verifier = nil }, nil},
		{"short salt", func(c *models.CryptoConfig) { c.Salt = b64(8) }, ErrInvalidSalt},
		{"salt not base64", func(c *models.CryptoConfig) { c.Salt = "not base64!" }, ErrInvalidSalt},
		{"too few rounds", func(c *models.CryptoConfig) { c.Iterations = 1000 }, ErrTooFewRounds},
		{"sha1", func(c *models.CryptoConfig) { c.Hash = "SHA-1" }, ErrInvalidKDFHash},
		{"verifier without data", func(c *models.CryptoConfig) { c.Verifier.Data = "" }, ErrInvalidVerifier},
		{"verifier bad iv", func(c *models.CryptoConfig) { c.Verifier.IV = b64(4) }, ErrInvalidVerifier},
	}

	v := NewVaultValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := v.Validate(context.Background(), cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
