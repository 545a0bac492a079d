// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the server side of the identity provider.
type AuthService interface {
	// RegisterUser creates an account and returns it with its new uid.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login checks the account password and returns the matching user.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, uid string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService is the server side of the document store. It never sees
// plaintext; every payload is an opaque EntryRecord.
type VaultService interface {
	ListEntries(ctx context.Context, uid string) ([]models.Entry, error)
	CreateEntry(ctx context.Context, uid string, rec models.EntryRecord) (models.Entry, error)
	UpdateEntry(ctx context.Context, uid, id string, rec models.EntryRecord) error
	DeleteEntry(ctx context.Context, uid, id string) error

	GetCryptoConfig(ctx context.Context, uid string) (models.CryptoConfig, error)
	SetCryptoConfig(ctx context.Context, uid string, cfg models.CryptoConfig) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// logging or validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IdentityProvider issues user identifiers and checks the account password.
// The account password is unrelated to the master password.
type IdentityProvider interface {
	// CreateAccount registers a new account and signs it in.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	// SignIn returns the uid of an existing account.
	SignIn(ctx context.Context, email, password string) (string, error)
	// SignOut forgets the current session.
	SignOut(ctx context.Context) error
}

// AccountService drives the client-side sign-up and sign-in flows on top of
// an IdentityProvider and the remote store.
type AccountService interface {
	// SignUp checks the master password policy, creates the account and
	// stores a fresh CryptoConfig for it.
	SignUp(ctx context.Context, email, password, masterPassword string) (Account, error)
	// SignIn signs in and loads the user's CryptoConfig.
	SignIn(ctx context.Context, email, password string) (Account, error)
	SignOut(ctx context.Context) error
}

// Account is what a successful sign-up or sign-in yields on the client.
type Account struct {
	UID          string
	CryptoConfig models.CryptoConfig
}
