// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/extension"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/MKhiriev/secure-vault/models"
)

var _ Client = (*App)(nil)

// App ties the account flows to a vault session. At most one session is
// open at a time; signing in again replaces it.
type App struct {
	account     service.AccountService
	store       vault.Store
	deriver     crypto.KeyDeriver
	cipher      crypto.Cipher
	sessionOpts []vault.Option
	logger      *logger.Logger

	mu      sync.Mutex
	session *vault.Session
}

// NewApp wires the HTTP server adapter, the crypto primitives and the
// account service from cfg.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	random := crypto.NewRandomSource()
	deriver := crypto.NewKeyDeriver(random)
	cipher := crypto.NewCipher(random)
	account := service.NewAccountService(server, server, deriver, cipher, cfg.Vault.KDFIterations)

	return New(account, server, deriver, cipher, logger), nil
}

// New builds an App from its parts. opts are applied to every session.
func New(account service.AccountService, store vault.Store, deriver crypto.KeyDeriver, cipher crypto.Cipher, logger *logger.Logger, opts ...vault.Option) *App {
	return &App{
		account:     account,
		store:       store,
		deriver:     deriver,
		cipher:      cipher,
		sessionOpts: opts,
		logger:      logger,
	}
}

// Unlock signs in with the account credentials and unlocks the vault with
// the master password.
func (a *App) Unlock(ctx context.Context, req extension.UnlockRequest) (extension.Snapshot, error) {
	acct, err := a.account.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return extension.Snapshot{}, err
	}
	return a.open(ctx, acct, req.MasterPassword)
}

// SignUp registers a new account and opens its (empty) vault.
func (a *App) SignUp(ctx context.Context, email, password, masterPassword string) (extension.Snapshot, error) {
	acct, err := a.account.SignUp(ctx, email, password, masterPassword)
	if err != nil {
		return extension.Snapshot{}, err
	}
	return a.open(ctx, acct, masterPassword)
}

func (a *App) open(ctx context.Context, acct service.Account, masterPassword string) (extension.Snapshot, error) {
	session := vault.NewSession(acct.UID, a.store, a.deriver, a.cipher, a.sessionOpts...)
	if err := session.Unlock(ctx, masterPassword, acct.CryptoConfig); err != nil {
		if signOutErr := a.account.SignOut(ctx); signOutErr != nil {
			a.logger.Err(signOutErr).Str("func", "App.open").Str("uid", acct.UID).Msg("sign out after failed unlock")
		}
		return extension.Snapshot{}, err
	}

	entries, err := session.Entries()
	if err != nil {
		return extension.Snapshot{}, err
	}

	a.mu.Lock()
	previous := a.session
	a.session = session
	a.mu.Unlock()

	if previous != nil {
		previous.Lock()
	}

	return extension.Snapshot{UID: acct.UID, Salt: acct.CryptoConfig.Salt, Entries: entries}, nil
}

// Session returns the current session, or ErrNoSession.
func (a *App) Session() (*vault.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil, ErrNoSession
	}
	return a.session, nil
}

// AddEntry encrypts and stores a new entry in the current session.
func (a *App) AddEntry(ctx context.Context, fields models.EntryFields, tags []string) (models.DecryptedEntry, error) {
	s, err := a.Session()
	if err != nil {
		return models.DecryptedEntry{}, vault.ErrVaultLocked
	}
	return s.AddEntry(ctx, fields, tags)
}

// Entries returns the decrypted entries of the current session.
func (a *App) Entries() ([]models.DecryptedEntry, error) {
	s, err := a.Session()
	if err != nil {
		return nil, vault.ErrVaultLocked
	}
	return s.Entries()
}

// Lock locks the current session, if any. The account stays signed in.
func (a *App) Lock() {
	a.mu.Lock()
	s := a.session
	a.mu.Unlock()

	if s != nil {
		s.Lock()
	}
}

// SignOut locks the vault, forgets the session and signs out of the server.
func (a *App) SignOut(ctx context.Context) error {
	a.mu.Lock()
	s := a.session
	a.session = nil
	a.mu.Unlock()

	if s != nil {
		s.Lock()
	}

	if err := a.account.SignOut(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
