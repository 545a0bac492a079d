// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/secure-vault/internal/logger"

// Storages bundles every repository the server needs.
type Storages struct {
	UserRepository         UserRepository
	EntryRepository        EntryRepository
	CryptoConfigRepository CryptoConfigRepository
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	ids := newIDGenerator()
	return &Storages{
		UserRepository:         NewUserRepository(db, ids, log),
		EntryRepository:        NewEntryRepository(db, ids, log),
		CryptoConfigRepository: NewCryptoConfigRepository(db, log),
	}
}
