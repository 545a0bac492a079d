// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

var configRowColumns = []string{"salt", "iterations", "hash", "verifier_data", "verifier_iv"}

func TestGetCryptoConfig_WithVerifier(t *testing.T) {
	db, mock, conn := newTestPostgresDB(t)
	defer conn.Close()
	repo := NewCryptoConfigRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT salt, iterations, hash, verifier_data, verifier_iv FROM crypto_configs WHERE uid = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(configRowColumns).AddRow("c2FsdA==", 100000, "SHA-256", "dmVy", "aXY="))

	cfg, err := repo.GetCryptoConfig(testContext(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", cfg.Salt)
	assert.Equal(t, 100000, cfg.Iterations)
	require.NotNil(t, cfg.Verifier)
	assert.Equal(t, models.EncryptedResult{Data: "dmVy", IV: "aXY="}, *cfg.Verifier)
}

func TestGetCryptoConfig_LegacyWithoutVerifier(t *testing.T) {
	db, mock, conn := newTestPostgresDB(t)
	defer conn.Close()
	repo := NewCryptoConfigRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM crypto_configs").
		WillReturnRows(sqlmock.NewRows(configRowColumns).AddRow("c2FsdA==", 100000, "SHA-256", nil, nil))

	cfg, err := repo.GetCryptoConfig(testContext(), "u1")
	require.NoError(t, err)
	assert.Nil(t, cfg.Verifier)
}

func TestGetCryptoConfig_NotFound(t *testing.T) {
	db, mock, conn := newTestPostgresDB(t)
	defer conn.Close()
	repo := NewCryptoConfigRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM crypto_configs").
		WillReturnRows(sqlmock.NewRows(configRowColumns))

	_, err := repo.GetCryptoConfig(testContext(), "u1")
	assert.ErrorIs(t, err, ErrCryptoConfigNotFound)
}

func TestCreateCryptoConfig_FillsDefaults(t *testing.T) {
	db, mock, conn := newTestPostgresDB(t)
	defer conn.Close()
	repo := NewCryptoConfigRepository(db, logger.Nop())

	mock.ExpectExec(`INSERT INTO crypto_configs \(uid,salt,iterations,hash,verifier_data,verifier_iv\)`).
		WithArgs("u1", "c2FsdA==", models.DefaultKDFIterations, models.DefaultKDFHash, "dmVy", "aXY=").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateCryptoConfig(testContext(), "u1", models.CryptoConfig{
		Salt:     "c2FsdA==",
		Verifier: &models.EncryptedResult{Data: "dmVy", IV: "aXY="},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCryptoConfig_Duplicate(t *testing.T) {
	db, mock, conn := newTestPostgresDB(t)
	defer conn.Close()
	repo := NewCryptoConfigRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO crypto_configs").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateCryptoConfig(testContext(), "u1", models.CryptoConfig{Salt: "x"})
	assert.ErrorIs(t, err, ErrCryptoConfigExists)
}

func TestCreateCryptoConfig_DBError(t *testing.T) {
	db, mock, conn := newTestPostgresDB(t)
	defer conn.Close()
	repo := NewCryptoConfigRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO crypto_configs").WillReturnError(errors.New("boom"))

	err := repo.CreateCryptoConfig(testContext(), "u1", models.CryptoConfig{Salt: "x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
