// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/validators"
	"github.com/MKhiriev/secure-vault/models"
)

// VaultValidationService rejects malformed input before it reaches the
// wrapped VaultService.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *VaultValidationService) ListEntries(ctx context.Context, uid string) ([]models.Entry, error) {
	if uid == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListEntries(ctx, uid)
}

func (v *VaultValidationService) CreateEntry(ctx context.Context, uid string, rec models.EntryRecord) (models.Entry, error) {
	if uid == "" {
		return models.Entry{}, ErrValidationNoUserID
	}
	if err := v.validateRecord(ctx, rec); err != nil {
		return models.Entry{}, err
	}
	return v.inner.CreateEntry(ctx, uid, rec)
}

func (v *VaultValidationService) UpdateEntry(ctx context.Context, uid, id string, rec models.EntryRecord) error {
	if err := v.validateIDs(uid, id); err != nil {
		return err
	}
	if err := v.validateRecord(ctx, rec); err != nil {
		return err
	}
	return v.inner.UpdateEntry(ctx, uid, id, rec)
}

func (v *VaultValidationService) DeleteEntry(ctx context.Context, uid, id string) error {
	if err := v.validateIDs(uid, id); err != nil {
		return err
	}
	return v.inner.DeleteEntry(ctx, uid, id)
}

func (v *VaultValidationService) GetCryptoConfig(ctx context.Context, uid string) (models.CryptoConfig, error) {
	if uid == "" {
		return models.CryptoConfig{}, ErrValidationNoUserID
	}
	return v.inner.GetCryptoConfig(ctx, uid)
}

func (v *VaultValidationService) SetCryptoConfig(ctx context.Context, uid string, cfg models.CryptoConfig) error {
	if uid == "" {
		return ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, cfg); err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", uid).Msg("crypto config rejected")
		return fmt.Errorf("%w: %w", ErrValidationInvalidCryptoConfig, err)
	}
	return v.inner.SetCryptoConfig(ctx, uid, cfg)
}

func (v *VaultValidationService) validateIDs(uid, id string) error {
	if uid == "" {
		return ErrValidationNoUserID
	}
	if id == "" {
		return ErrValidationNoEntryID
	}
	return nil
}

func (v *VaultValidationService) validateRecord(ctx context.Context, rec models.EntryRecord) error {
	if err := v.validator.Validate(ctx, rec); err != nil {
		logger.FromContext(ctx).Err(err).Msg("entry record rejected")
		return fmt.Errorf("%w: %w", ErrValidationEmptyCiphertext, err)
	}
	return nil
}
