// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/MKhiriev/secure-vault/models"
)

type accountService struct {
	identity IdentityProvider
	store    vault.Store

	deriver crypto.KeyDeriver
	cipher  crypto.Cipher

	// iterations is written into every new CryptoConfig.
	iterations int
}

// NewAccountService wires the sign-up and sign-in flows. iterations is the
// PBKDF2 round count for new vaults; zero means the default.
func NewAccountService(identity IdentityProvider, store vault.Store, deriver crypto.KeyDeriver, cipher crypto.Cipher, iterations int) AccountService {
	if iterations == 0 {
		iterations = models.DefaultKDFIterations
	}
	return &accountService{
		identity:   identity,
		store:      store,
		deriver:    deriver,
		cipher:     cipher,
		iterations: iterations,
	}
}

// SignUp creates the account and then its crypto config: a fresh salt, the
// KDF parameters and a verifier sealed under the derived key. The key itself
// is discarded; the caller unlocks the session with the returned config.
//
// A weak master password is rejected before anything is sent.
func (a *accountService) SignUp(ctx context.Context, email, password, masterPassword string) (Account, error) {
	log := logger.FromContext(ctx)

	if err := generator.ValidateMasterPassword(masterPassword); err != nil {
		return Account{}, err
	}

	salt, err := a.deriver.GenerateSalt()
	if err != nil {
		return Account{}, fmt.Errorf("generate salt: %w", err)
	}

	cfg := models.CryptoConfig{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Iterations: a.iterations,
		Hash:       models.DefaultKDFHash,
	}

	key, err := a.deriver.DeriveKey(masterPassword, salt, crypto.KDFParamsFromConfig(cfg))
	if err != nil {
		return Account{}, err
	}
	defer key.Zero()

	verifier, err := crypto.NewVerifier(a.cipher, key)
	if err != nil {
		return Account{}, fmt.Errorf("seal verifier: %w", err)
	}
	cfg.Verifier = &verifier

	uid, err := a.identity.CreateAccount(ctx, email, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account creation failed")
		return Account{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err = a.store.SetCryptoConfig(ctx, uid, cfg); err != nil {
		log.Err(err).Str("uid", uid).Msg("storing crypto config failed")
		return Account{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	log.Info().Str("uid", uid).Msg("account created")
	return Account{UID: uid, CryptoConfig: cfg}, nil
}

// SignIn authenticates with the identity provider and loads the crypto
// config needed to unlock. An account whose sign-up never finished yields
// ErrCryptoConfigNotFound.
func (a *accountService) SignIn(ctx context.Context, email, password string) (Account, error) {
	log := logger.FromContext(ctx)

	uid, err := a.identity.SignIn(ctx, email, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("sign in failed")
		return Account{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	cfg, err := a.store.GetCryptoConfig(ctx, uid)
	if errors.Is(err, vault.ErrNotFound) {
		return Account{}, fmt.Errorf("%w: %w", ErrCryptoConfigNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("uid", uid).Msg("loading crypto config failed")
		return Account{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return Account{UID: uid, CryptoConfig: cfg}, nil
}

// SignOut signs out of the identity provider. Locking the session is the
// caller's job.
func (a *accountService) SignOut(ctx context.Context) error {
	if err := a.identity.SignOut(ctx); err != nil {
		return mapAdapterError(err)
	}
	return nil
}
