// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Store is the remote document store holding a user's encrypted entries and
// crypto configuration. Implementations report a missing entry with an error
// wrapping ErrNotFound; any other error is treated as the store being
// unavailable.
type Store interface {
	// GetAll returns every entry of uid in store order.
	GetAll(ctx context.Context, uid string) ([]models.Entry, error)

	// Add stores rec and returns the id assigned by the store.
	Add(ctx context.Context, uid string, rec models.EntryRecord) (string, error)

	// Update replaces the encrypted payload and tags of entry id.
	Update(ctx context.Context, uid, id string, rec models.EntryRecord) error

	// Delete removes entry id.
	Delete(ctx context.Context, uid, id string) error

	// GetCryptoConfig returns the crypto configuration of uid.
	GetCryptoConfig(ctx context.Context, uid string) (models.CryptoConfig, error)

	// SetCryptoConfig stores the crypto configuration of uid. It is written
	// once at sign-up.
	SetCryptoConfig(ctx context.Context, uid string, cfg models.CryptoConfig) error
}
