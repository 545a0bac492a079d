// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntryFields is the secret part of a password entry. It is serialized to
// JSON and encrypted as a whole; the store never sees it in the clear.
type EntryFields struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}

// Entry is the at-rest form of a password entry as kept by the document
// store under users/{uid}/passwords/{id}.
type Entry struct {
	// ID is assigned by the store on creation and never changes.
	ID string `json:"id"`

	// EncryptedData is the base64 ciphertext of the JSON-encoded EntryFields.
	EncryptedData string `json:"encryptedData"`

	// IV is the base64 initialization vector used for EncryptedData.
	IV string `json:"iv"`

	// Tags are stored unencrypted to allow filtering.
	Tags []string `json:"tags"`

	// CreatedAt and UpdatedAt come from the store's clock.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryRecord is the payload written to the store on add and update.
type EntryRecord struct {
	EncryptedData string   `json:"encryptedData"`
	IV            string   `json:"iv"`
	Tags          []string `json:"tags"`
}

// DecryptedEntry is the in-memory form of an entry inside an unlocked
// session. It is discarded on lock.
type DecryptedEntry struct {
	ID string `json:"id"`
	EntryFields
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryPatch lists the fields an update may change. Nil means "keep".
type EntryPatch struct {
	Title    *string
	Username *string
	Password *string
	URL      *string
	Notes    *string
	Tags     *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Title == nil && p.Username == nil && p.Password == nil &&
		p.URL == nil && p.Notes == nil && p.Tags == nil
}

// IDResponse is returned by the store when it assigns an identifier.
type IDResponse struct {
	ID string `json:"id"`
}
