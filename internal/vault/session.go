// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the client-side vault session: the state machine
// that holds the derived key and the decrypted entries of one user and
// mediates every read and write against the remote store.
package vault

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateLocked State = iota
	StateUnlocking
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocking:
		return "unlocking"
	case StateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// defaultDecryptConcurrency bounds the number of entries decrypted at once
// during Unlock.
const defaultDecryptConcurrency = 8

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now for provisional timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithDecryptConcurrency sets how many entries Unlock decrypts in parallel.
func WithDecryptConcurrency(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Session holds the unlocked state of one user's vault.
//
// All state is guarded by mu. Store calls are made without holding mu; each
// mutating call records the epoch it started in and commits its result only
// if no Lock happened meanwhile.
type Session struct {
	uid         string
	store       Store
	deriver     crypto.KeyDeriver
	cipher      crypto.Cipher
	now         func() time.Time
	concurrency int

	mu      sync.RWMutex
	state   State
	epoch   uint64
	key     crypto.Key
	entries []models.DecryptedEntry
}

// NewSession returns a locked session for uid.
func NewSession(uid string, store Store, deriver crypto.KeyDeriver, cipher crypto.Cipher, opts ...Option) *Session {
	s := &Session{
		uid:         uid,
		store:       store,
		deriver:     deriver,
		cipher:      cipher,
		now:         time.Now,
		concurrency: defaultDecryptConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UID returns the user the session belongs to.
func (s *Session) UID() string {
	return s.uid
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsUnlocked is shorthand for State() == StateUnlocked.
func (s *Session) IsUnlocked() bool {
	return s.State() == StateUnlocked
}

// Unlock derives the vault key from masterPassword and cfg, loads every
// entry from the store and decrypts them.
//
// Entries that fail to decrypt or decode are logged and skipped; the rest
// keep store order. The session becomes unlocked even when no entry could be
// read. If the config carries a verifier and the key does not open it,
// Unlock fails with ErrWrongMasterPassword before the store is read. Any
// failure leaves the session locked.
func (s *Session) Unlock(ctx context.Context, masterPassword string, cfg models.CryptoConfig) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.state == StateUnlocking {
		s.mu.Unlock()
		return ErrUnlockInProgress
	}
	s.clearLocked()
	s.state = StateUnlocking
	epoch := s.epoch
	s.mu.Unlock()

	key, entries, err := s.open(ctx, masterPassword, cfg)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		// Lock was called while we were working.
		key.Zero()
		return ErrVaultLocked
	}
	if err != nil {
		s.state = StateLocked
		log.Err(err).Str("func", "vault.Session.Unlock").Str("uid", s.uid).Msg("unlock failed")
		return err
	}

	s.key = key
	s.entries = entries
	s.state = StateUnlocked

	log.Info().Str("func", "vault.Session.Unlock").Str("uid", s.uid).Int("entries", len(entries)).Msg("vault unlocked")
	return nil
}

// open does the I/O and CPU work of Unlock without touching session state.
func (s *Session) open(ctx context.Context, masterPassword string, cfg models.CryptoConfig) (crypto.Key, []models.DecryptedEntry, error) {
	salt, err := base64.StdEncoding.DecodeString(cfg.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode salt: %w", crypto.ErrKeyDerivation, err)
	}

	key, err := s.deriver.DeriveKey(masterPassword, salt, crypto.KDFParamsFromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}

	if cfg.Verifier != nil {
		if err = crypto.CheckVerifier(s.cipher, key, *cfg.Verifier); err != nil {
			key.Zero()
			return nil, nil, fmt.Errorf("%w: %w", ErrWrongMasterPassword, err)
		}
	}

	raw, err := s.store.GetAll(ctx, s.uid)
	if err != nil {
		key.Zero()
		return nil, nil, storeError(err)
	}

	return key, s.decryptAll(ctx, raw, key), nil
}

// decryptAll decrypts raw concurrently. Each result lands in the slot of its
// source entry so the output keeps store order.
func (s *Session) decryptAll(ctx context.Context, raw []models.Entry, key crypto.Key) []models.DecryptedEntry {
	log := logger.FromContext(ctx)

	slots := make([]*models.DecryptedEntry, len(raw))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, e := range raw {
		g.Go(func() error {
			d, err := s.decryptEntry(e, key)
			if err != nil {
				log.Warn().Err(err).Str("func", "vault.Session.decryptAll").Str("entry_id", e.ID).Msg("skipping unreadable entry")
				return nil
			}
			slots[i] = &d
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.DecryptedEntry, 0, len(raw))
	for _, d := range slots {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

func (s *Session) decryptEntry(e models.Entry, key crypto.Key) (models.DecryptedEntry, error) {
	plain, err := s.cipher.Decrypt(e.EncryptedData, e.IV, key)
	if err != nil {
		return models.DecryptedEntry{}, fmt.Errorf("%w: %w", ErrUnreadableEntry, err)
	}
	fields, err := decodeFields(plain)
	if err != nil {
		return models.DecryptedEntry{}, err
	}
	return models.DecryptedEntry{
		ID:          e.ID,
		EntryFields: fields,
		Tags:        normalizeTags(e.Tags),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, nil
}

// Lock drops the key and all decrypted entries. It is idempotent and never
// waits for store I/O; results of calls still in flight are discarded.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// clearLocked resets the session to StateLocked. mu must be held.
func (s *Session) clearLocked() {
	s.epoch++
	s.key.Zero()
	s.key = nil
	s.entries = nil
	s.state = StateLocked
}

// snapshot returns a private copy of the key and the current epoch, or
// ErrVaultLocked. The caller must zero the key.
func (s *Session) snapshot() (crypto.Key, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateUnlocked {
		return nil, 0, ErrVaultLocked
	}
	return slices.Clone(s.key), s.epoch, nil
}

// commit runs fn under the write lock if the session is still in epoch.
func (s *Session) commit(epoch uint64, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateUnlocked || s.epoch != epoch {
		return ErrVaultLocked
	}
	fn()
	return nil
}

// seal encrypts fields into a store record.
func (s *Session) seal(fields models.EntryFields, tags []string, key crypto.Key) (models.EntryRecord, error) {
	plain, err := encodeFields(fields)
	if err != nil {
		return models.EntryRecord{}, err
	}
	enc, err := s.cipher.Encrypt(plain, key)
	if err != nil {
		return models.EntryRecord{}, err
	}
	return models.EntryRecord{EncryptedData: enc.Data, IV: enc.IV, Tags: normalizeTags(tags)}, nil
}

// AddEntry encrypts fields, stores them and appends the new entry. The
// returned entry carries local provisional timestamps; the store's own
// timestamps are picked up on the next Unlock.
func (s *Session) AddEntry(ctx context.Context, fields models.EntryFields, tags []string) (models.DecryptedEntry, error) {
	key, epoch, err := s.snapshot()
	if err != nil {
		return models.DecryptedEntry{}, err
	}
	defer key.Zero()

	rec, err := s.seal(fields, tags, key)
	if err != nil {
		return models.DecryptedEntry{}, err
	}

	id, err := s.store.Add(ctx, s.uid, rec)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vault.Session.AddEntry").Str("uid", s.uid).Msg("store add failed")
		return models.DecryptedEntry{}, storeError(err)
	}

	now := s.now()
	entry := models.DecryptedEntry{
		ID:          id,
		EntryFields: fields,
		Tags:        rec.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.commit(epoch, func() { s.entries = append(s.entries, entry) }); err != nil {
		return models.DecryptedEntry{}, err
	}
	return cloneEntry(entry), nil
}

// UpdateEntry applies patch to entry id, re-encrypts the whole merged entry
// and writes it. Fields absent from patch keep their values.
func (s *Session) UpdateEntry(ctx context.Context, id string, patch models.EntryPatch) (models.DecryptedEntry, error) {
	key, epoch, err := s.snapshot()
	if err != nil {
		return models.DecryptedEntry{}, err
	}
	defer key.Zero()

	current, err := s.Entry(id)
	if err != nil {
		return models.DecryptedEntry{}, err
	}

	merged := applyPatch(current, patch)
	rec, err := s.seal(merged.EntryFields, merged.Tags, key)
	if err != nil {
		return models.DecryptedEntry{}, err
	}

	if err = s.store.Update(ctx, s.uid, id, rec); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vault.Session.UpdateEntry").Str("uid", s.uid).Str("entry_id", id).Msg("store update failed")
		return models.DecryptedEntry{}, storeError(err)
	}
	merged.UpdatedAt = s.now()

	err = s.commit(epoch, func() {
		if i := s.indexOf(id); i >= 0 {
			s.entries[i] = merged
		}
	})
	if err != nil {
		return models.DecryptedEntry{}, err
	}
	return cloneEntry(merged), nil
}

// DeleteEntry removes entry id from the store and, once the store has
// confirmed, from memory. A store failure leaves memory untouched.
func (s *Session) DeleteEntry(ctx context.Context, id string) error {
	key, epoch, err := s.snapshot()
	if err != nil {
		return err
	}
	key.Zero()

	if err = s.store.Delete(ctx, s.uid, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vault.Session.DeleteEntry").Str("uid", s.uid).Str("entry_id", id).Msg("store delete failed")
		return storeError(err)
	}

	return s.commit(epoch, func() {
		if i := s.indexOf(id); i >= 0 {
			s.entries = slices.Delete(s.entries, i, i+1)
		}
	})
}

// Entries returns a copy of the decrypted entries in store order.
func (s *Session) Entries() ([]models.DecryptedEntry, error) {
	return s.filter(func(models.DecryptedEntry) bool { return true })
}

// Entry returns a copy of entry id.
func (s *Session) Entry(id string) (models.DecryptedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateUnlocked {
		return models.DecryptedEntry{}, ErrVaultLocked
	}
	i := s.indexOf(id)
	if i < 0 {
		return models.DecryptedEntry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneEntry(s.entries[i]), nil
}

// Search returns the entries matching query, see Matches.
func (s *Session) Search(query string) ([]models.DecryptedEntry, error) {
	return s.filter(func(e models.DecryptedEntry) bool { return Matches(e, query) })
}

// EntriesForSite returns the entries whose URL belongs to siteURL, see
// MatchesSite.
func (s *Session) EntriesForSite(siteURL string) ([]models.DecryptedEntry, error) {
	return s.filter(func(e models.DecryptedEntry) bool { return MatchesSite(e.URL, siteURL) })
}

func (s *Session) filter(keep func(models.DecryptedEntry) bool) ([]models.DecryptedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateUnlocked {
		return nil, ErrVaultLocked
	}

	out := make([]models.DecryptedEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, cloneEntry(e))
		}
	}
	return out, nil
}

// indexOf returns the position of id in entries or -1. mu must be held.
func (s *Session) indexOf(id string) int {
	return slices.IndexFunc(s.entries, func(e models.DecryptedEntry) bool { return e.ID == id })
}

func cloneEntry(e models.DecryptedEntry) models.DecryptedEntry {
	e.Tags = normalizeTags(e.Tags)
	return e
}

// storeError classifies a store failure.
func storeError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
