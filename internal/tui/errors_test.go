// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/stretchr/testify/assert"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: fmt.Errorf("%w: dial tcp", adapter.ErrTransport), want: "No network or the server is unavailable"},
		{err: fmt.Errorf("sign in: %w", service.ErrWrongPassword), want: "Invalid email or password"},
		{err: vault.ErrWrongMasterPassword, want: "Invalid master password"},
		{err: fmt.Errorf("%w: x", generator.ErrWeakMasterPassword), want: "Master password must be at least 12 characters and mix 3 of: upper, lower, digits, symbols"},
		{err: errors.New("something else"), want: "something else"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Humanize(tt.err))
	}
}
