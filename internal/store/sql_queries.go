// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secure-vault/models"
)

const (
	usersTable         = "users"
	passwordsTable     = "passwords"
	cryptoConfigsTable = "crypto_configs"
)

var (
	userColumns  = []string{"uid", "email", "password_hash", "created_at"}
	entryColumns = []string{"id", "encrypted_data", "iv", "tags", "created_at", "updated_at"}
	configColumn = []string{"salt", "iterations", "hash", "verifier_data", "verifier_iv"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UID, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectEntriesQuery(b sq.StatementBuilderType, uid string) (string, []any, error) {
	return b.Select(entryColumns...).
		From(passwordsTable).
		Where(sq.Eq{"uid": uid}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildInsertEntryQuery(b sq.StatementBuilderType, uid string, entry models.Entry) (string, []any, error) {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(passwordsTable).
		Columns("id", "uid", "encrypted_data", "iv", "tags", "created_at", "updated_at").
		Values(entry.ID, uid, entry.EncryptedData, entry.IV, tags, entry.CreatedAt, entry.UpdatedAt).
		ToSql()
}

// buildUpdateEntryQuery replaces the ciphertext, IV and tags of one entry and
// returns its creation time.
func buildUpdateEntryQuery(b sq.StatementBuilderType, uid, id string, record models.EntryRecord, now time.Time) (string, []any, error) {
	tags, err := encodeTags(record.Tags)
	if err != nil {
		return "", nil, err
	}

	return b.Update(passwordsTable).
		Set("encrypted_data", record.EncryptedData).
		Set("iv", record.IV).
		Set("tags", tags).
		Set("updated_at", now).
		Where(sq.Eq{"id": id, "uid": uid}).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, uid, id string) (string, []any, error) {
	return b.Delete(passwordsTable).
		Where(sq.Eq{"id": id, "uid": uid}).
		ToSql()
}

func buildSelectCryptoConfigQuery(b sq.StatementBuilderType, uid string) (string, []any, error) {
	return b.Select(configColumn...).
		From(cryptoConfigsTable).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

func buildInsertCryptoConfigQuery(b sq.StatementBuilderType, uid string, cfg models.CryptoConfig) (string, []any, error) {
	var verifierData, verifierIV *string
	if cfg.Verifier != nil {
		verifierData, verifierIV = &cfg.Verifier.Data, &cfg.Verifier.IV
	}

	return b.Insert(cryptoConfigsTable).
		Columns("uid", "salt", "iterations", "hash", "verifier_data", "verifier_iv").
		Values(uid, cfg.Salt, cfg.Iterations, cfg.Hash, verifierData, verifierIV).
		ToSql()
}

// Tags live in a TEXT column as a JSON array so both dialects share a schema.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
