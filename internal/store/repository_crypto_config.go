// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

type cryptoConfigRepository struct {
	*DB
	logger *logger.Logger
}

// NewCryptoConfigRepository constructs a [CryptoConfigRepository].
func NewCryptoConfigRepository(db *DB, logger *logger.Logger) CryptoConfigRepository {
	return &cryptoConfigRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cryptoConfigRepository) GetCryptoConfig(ctx context.Context, uid string) (models.CryptoConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCryptoConfigQuery(c.builder, uid)
	if err != nil {
		return models.CryptoConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		cfg                      models.CryptoConfig
		verifierData, verifierIV sql.NullString
	)
	err = c.QueryRowContext(ctx, query, args...).
		Scan(&cfg.Salt, &cfg.Iterations, &cfg.Hash, &verifierData, &verifierIV)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CryptoConfig{}, ErrCryptoConfigNotFound
		}
		log.Err(err).Str("func", "cryptoConfigRepository.GetCryptoConfig").Str("uid", uid).Msg("failed to scan crypto config")
		return models.CryptoConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if verifierData.Valid && verifierIV.Valid {
		cfg.Verifier = &models.EncryptedResult{Data: verifierData.String, IV: verifierIV.String}
	}

	return cfg, nil
}

// CreateCryptoConfig writes the config once. A second write for the same
// uid yields [ErrCryptoConfigExists].
func (c *cryptoConfigRepository) CreateCryptoConfig(ctx context.Context, uid string, cfg models.CryptoConfig) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCryptoConfigQuery(c.builder, uid, cfg.WithDefaults())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.ExecContext(ctx, query, args...); err != nil {
		if c.errorClassificator.IsUniqueViolation(err) {
			return ErrCryptoConfigExists
		}
		log.Err(err).Str("func", "cryptoConfigRepository.CreateCryptoConfig").Str("uid", uid).Bool("retryable", c.IsRetryable(err)).Msg("failed to insert crypto config")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
