// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/secure-vault/internal/extension"
	"github.com/MKhiriev/secure-vault/internal/vault"
)

// Client is the application side used by the CLI commands and the
// extension agent.
type Client interface {
	extension.Vault

	// SignUp creates the account and its crypto config, then unlocks an
	// empty vault.
	SignUp(ctx context.Context, email, password, masterPassword string) (extension.Snapshot, error)

	// SignOut locks the vault and signs out of the server.
	SignOut(ctx context.Context) error

	// Session returns the current vault session.
	Session() (*vault.Session, error)
}
