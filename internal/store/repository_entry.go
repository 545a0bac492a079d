// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

// entryRepository is the SQL implementation of [EntryRepository] over the
// "passwords" table. It stores ciphertext only.
type entryRepository struct {
	*DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, ids IDGenerator, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// ListEntries returns every entry of uid ordered by creation time.
// Returns an empty slice when the user has none.
func (e *entryRepository) ListEntries(ctx context.Context, uid string) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery(e.builder, uid)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.ListEntries").Str("uid", uid).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.ListEntries").Str("uid", uid).Bool("retryable", e.IsRetryable(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Entry, 0, 50)
	for rows.Next() {
		var (
			item models.Entry
			tags string
		)
		if err := rows.Scan(&item.ID, &item.EncryptedData, &item.IV, &tags, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Err(err).Str("func", "entryRepository.ListEntries").Str("uid", uid).Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if item.Tags, err = decodeTags(tags); err != nil {
			log.Err(err).Str("func", "entryRepository.ListEntries").Str("id", item.ID).Msg("bad tags column")
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "entryRepository.ListEntries").Str("uid", uid).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// CreateEntry stores record under a fresh id and returns the stored entry.
func (e *entryRepository) CreateEntry(ctx context.Context, uid string, record models.EntryRecord) (models.Entry, error) {
	log := logger.FromContext(ctx)

	now := e.now()
	entry := models.Entry{
		ID:            e.ids.Generate(),
		EncryptedData: record.EncryptedData,
		IV:            record.IV,
		Tags:          record.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	query, args, err := buildInsertEntryQuery(e.builder, uid, entry)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.CreateEntry").Str("uid", uid).Msg("failed to create query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "entryRepository.CreateEntry").Str("uid", uid).Bool("retryable", e.IsRetryable(err)).Msg("failed to insert entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// UpdateEntry replaces the stored ciphertext, IV and tags of id.
func (e *entryRepository) UpdateEntry(ctx context.Context, uid, id string, record models.EntryRecord) (models.Entry, error) {
	log := logger.FromContext(ctx)

	now := e.now()
	query, args, err := buildUpdateEntryQuery(e.builder, uid, id, record, now)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.UpdateEntry").Str("id", id).Msg("failed to create query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry := models.Entry{
		ID:            id,
		EncryptedData: record.EncryptedData,
		IV:            record.IV,
		Tags:          record.Tags,
		UpdatedAt:     now,
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	if err = e.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}
		log.Err(err).Str("func", "entryRepository.UpdateEntry").Str("id", id).Bool("retryable", e.IsRetryable(err)).Msg("failed to update entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// DeleteEntry removes id. Deleting an id that uid does not own yields
// [ErrEntryNotFound].
func (e *entryRepository) DeleteEntry(ctx context.Context, uid, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(e.builder, uid, id)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.DeleteEntry").Str("id", id).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.DeleteEntry").Str("id", id).Bool("retryable", e.IsRetryable(err)).Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
