// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/vault"
)

// ErrCancelled is returned by Prompt when the user leaves with esc or ctrl+c.
var ErrCancelled = errors.New("prompt cancelled")

// Humanize turns an error from the client stack into a message for the
// terminal. Unknown errors are returned as is.
func Humanize(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrTransport):
		return "No network or the server is unavailable"
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return "An account with this email already exists"
	case errors.Is(err, service.ErrCryptoConfigNotFound):
		return "User configuration not found"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotSignedIn):
		return "Session expired, please sign in again"
	case errors.Is(err, generator.ErrWeakMasterPassword):
		return "Master password must be at least 12 characters and mix 3 of: upper, lower, digits, symbols"
	case errors.Is(err, vault.ErrWrongMasterPassword):
		return "Invalid master password"
	case errors.Is(err, vault.ErrNotFound):
		return "Entry not found"
	case errors.Is(err, vault.ErrVaultLocked):
		return "Please unlock your vault first"
	case errors.Is(err, vault.ErrStoreUnavailable):
		return "Vault storage is unavailable. Please try again later."
	default:
		return err.Error()
	}
}
