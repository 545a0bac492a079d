// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extension

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v4"

	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/MKhiriev/secure-vault/models"
)

// handoffVersion is written into every record kept in SessionStorage.
// Readers reject records of any other version.
const handoffVersion = 1

// SessionStorage keys.
const (
	keyAuth               = "auth"
	keyCachedPasswords    = "cachedPasswords"
	keyPendingCredentials = "pendingCredentials"
	keyBadge              = "badge"
)

// fallbackTitle is used for pending credentials whose URL has no hostname.
const fallbackTitle = "Website"

type versioned interface {
	version() int
}

type authRecord struct {
	Version int    `msgpack:"v"`
	UserID  string `msgpack:"uid"`
	Salt    string `msgpack:"salt"`
}

func (r *authRecord) version() int { return r.Version }

type cachedEntry struct {
	ID        string    `msgpack:"id"`
	Title     string    `msgpack:"title"`
	Username  string    `msgpack:"username"`
	Password  string    `msgpack:"password"`
	URL       string    `msgpack:"url"`
	Notes     string    `msgpack:"notes"`
	Tags      []string  `msgpack:"tags"`
	CreatedAt time.Time `msgpack:"created_at"`
	UpdatedAt time.Time `msgpack:"updated_at"`
}

type cacheRecord struct {
	Version int           `msgpack:"v"`
	Entries []cachedEntry `msgpack:"entries"`
}

func (r *cacheRecord) version() int { return r.Version }

type pendingRecord struct {
	Version   int    `msgpack:"v"`
	Hostname  string `msgpack:"hostname"`
	Username  string `msgpack:"username"`
	Password  string `msgpack:"password"`
	URL       string `msgpack:"url"`
	Timestamp int64  `msgpack:"ts"`
}

func (r *pendingRecord) version() int { return r.Version }

// PendingCredentials are credentials captured by the content script and
// waiting for the app side to save them.
type PendingCredentials struct {
	SavedCredentials
	Timestamp time.Time
}

// EntryFields pre-fills a new entry from p. The title is the hostname of
// the URL without "www.".
func (p PendingCredentials) EntryFields() models.EntryFields {
	title := vault.Hostname(p.URL)
	if title == "" {
		title = fallbackTitle
	}
	return models.EntryFields{
		Title:    title,
		Username: p.Username,
		Password: p.Password,
		URL:      p.URL,
	}
}

func put(s SessionStorage, key string, v any) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.Set(key, b)
	return nil
}

func get(s SessionStorage, key string, v versioned) (bool, error) {
	b, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	if err := msgpack.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	if v.version() != handoffVersion {
		return false, fmt.Errorf("%w: %s has version %d", ErrHandoffVersion, key, v.version())
	}
	return true, nil
}

// PublishSession records an unlocked session for the background: the user,
// the salt and the decrypted entries used for site lookups.
func PublishSession(s SessionStorage, uid, salt string, entries []models.DecryptedEntry) error {
	if err := put(s, keyAuth, &authRecord{Version: handoffVersion, UserID: uid, Salt: salt}); err != nil {
		return err
	}
	return PublishEntries(s, entries)
}

// PublishEntries replaces the cached entries, e.g. after an add or delete.
func PublishEntries(s SessionStorage, entries []models.DecryptedEntry) error {
	rec := cacheRecord{Version: handoffVersion, Entries: make([]cachedEntry, 0, len(entries))}
	for _, e := range entries {
		rec.Entries = append(rec.Entries, cachedEntry{
			ID:        e.ID,
			Title:     e.Title,
			Username:  e.Username,
			Password:  e.Password,
			URL:       e.URL,
			Notes:     e.Notes,
			Tags:      e.Tags,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	return put(s, keyCachedPasswords, &rec)
}

// ReadAuthStatus reports whether a session has been published. Both the
// user id and the salt must be present.
func ReadAuthStatus(s SessionStorage) AuthStatus {
	var rec authRecord
	ok, err := get(s, keyAuth, &rec)
	if err != nil || !ok {
		return AuthStatus{}
	}
	return AuthStatus{
		IsAuthenticated: rec.UserID != "" && rec.Salt != "",
		UserID:          rec.UserID,
	}
}

// CachedEntries returns the entries published by the app side. ok is false
// when nothing has been published.
func CachedEntries(s SessionStorage) (entries []models.DecryptedEntry, ok bool, err error) {
	var rec cacheRecord
	if ok, err = get(s, keyCachedPasswords, &rec); err != nil || !ok {
		return nil, ok, err
	}

	entries = make([]models.DecryptedEntry, 0, len(rec.Entries))
	for _, c := range rec.Entries {
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		entries = append(entries, models.DecryptedEntry{
			ID: c.ID,
			EntryFields: models.EntryFields{
				Title:    c.Title,
				Username: c.Username,
				Password: c.Password,
				URL:      c.URL,
				Notes:    c.Notes,
			},
			Tags:      tags,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return entries, true, nil
}

// PutPendingCredentials stores c for the app side, replacing any earlier
// pending credentials.
func PutPendingCredentials(s SessionStorage, c SavedCredentials, now time.Time) error {
	return put(s, keyPendingCredentials, &pendingRecord{
		Version:   handoffVersion,
		Hostname:  c.Hostname,
		Username:  c.Username,
		Password:  c.Password,
		URL:       c.URL,
		Timestamp: now.UnixMilli(),
	})
}

// ConsumePendingCredentials reads and removes the pending credentials and
// clears the badge. ok is false when there are none.
func ConsumePendingCredentials(s SessionStorage) (p PendingCredentials, ok bool, err error) {
	var rec pendingRecord
	ok, err = get(s, keyPendingCredentials, &rec)
	if err != nil {
		s.Remove(keyPendingCredentials)
		return PendingCredentials{}, false, err
	}
	if !ok {
		return PendingCredentials{}, false, nil
	}

	s.Remove(keyPendingCredentials, keyBadge)
	return PendingCredentials{
		SavedCredentials: SavedCredentials{
			Hostname: rec.Hostname,
			Username: rec.Username,
			Password: rec.Password,
			URL:      rec.URL,
		},
		Timestamp: time.UnixMilli(rec.Timestamp),
	}, true, nil
}

// SetBadge sets the badge text; an empty text removes it.
func SetBadge(s SessionStorage, text string) {
	if text == "" {
		s.Remove(keyBadge)
		return
	}
	s.Set(keyBadge, []byte(text))
}

// Badge returns the current badge text.
func Badge(s SessionStorage) string {
	b, _ := s.Get(keyBadge)
	return string(b)
}
