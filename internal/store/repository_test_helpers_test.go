// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedIDs struct {
	ids  []string
	next int
}

func (f *fixedIDs) Generate() string {
	id := f.ids[f.next%len(f.ids)]
	f.next++
	return id
}

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func newTestDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return newDB(conn, dialect, logger.Nop()), mock, conn
}

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	return newTestDB(t, config.DriverPostgres)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
