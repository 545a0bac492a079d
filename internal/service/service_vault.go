// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/store"
	"github.com/MKhiriev/secure-vault/models"
)

type vaultService struct {
	entryRepository        store.EntryRepository
	cryptoConfigRepository store.CryptoConfigRepository

	logger *logger.Logger
}

// NewVaultService returns the plain VaultService. Input checks live in the
// validation wrapper, see NewVaultValidationService.
func NewVaultService(entries store.EntryRepository, configs store.CryptoConfigRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		entryRepository:        entries,
		cryptoConfigRepository: configs,
		logger:                 logger,
	}
}

func (v *vaultService) ListEntries(ctx context.Context, uid string) ([]models.Entry, error) {
	entries, err := v.entryRepository.ListEntries(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (v *vaultService) CreateEntry(ctx context.Context, uid string, rec models.EntryRecord) (models.Entry, error) {
	entry, err := v.entryRepository.CreateEntry(ctx, uid, rec)
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("uid", uid).Str("id", entry.ID).Msg("entry created")
	return entry, nil
}

func (v *vaultService) UpdateEntry(ctx context.Context, uid, id string, rec models.EntryRecord) error {
	if _, err := v.entryRepository.UpdateEntry(ctx, uid, id, rec); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

func (v *vaultService) DeleteEntry(ctx context.Context, uid, id string) error {
	if err := v.entryRepository.DeleteEntry(ctx, uid, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (v *vaultService) GetCryptoConfig(ctx context.Context, uid string) (models.CryptoConfig, error) {
	cfg, err := v.cryptoConfigRepository.GetCryptoConfig(ctx, uid)
	if err != nil {
		return models.CryptoConfig{}, fmt.Errorf("get crypto config: %w", err)
	}
	return cfg, nil
}

func (v *vaultService) SetCryptoConfig(ctx context.Context, uid string, cfg models.CryptoConfig) error {
	if err := v.cryptoConfigRepository.CreateCryptoConfig(ctx, uid, cfg); err != nil {
		return fmt.Errorf("set crypto config: %w", err)
	}
	return nil
}
