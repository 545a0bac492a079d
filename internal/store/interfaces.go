// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts of the identity provider.
type UserRepository interface {
	// CreateUser inserts user and returns it with CreatedAt filled in.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// EntryRepository is the document store for encrypted password entries,
// scoped by user id.
type EntryRepository interface {
	ListEntries(ctx context.Context, uid string) ([]models.Entry, error)
	CreateEntry(ctx context.Context, uid string, record models.EntryRecord) (models.Entry, error)
	// UpdateEntry and DeleteEntry yield ErrEntryNotFound when id does not
	// belong to uid.
	UpdateEntry(ctx context.Context, uid, id string, record models.EntryRecord) (models.Entry, error)
	DeleteEntry(ctx context.Context, uid, id string) error
}

// CryptoConfigRepository stores the single per-user crypto config.
type CryptoConfigRepository interface {
	GetCryptoConfig(ctx context.Context, uid string) (models.CryptoConfig, error)
	CreateCryptoConfig(ctx context.Context, uid string, cfg models.CryptoConfig) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
