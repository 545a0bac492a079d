// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/secure-vault/models"
)

// entryFieldKeys are the only keys an encrypted payload may contain.
var entryFieldKeys = [...]string{"title", "username", "password", "url", "notes"}

// encodeFields serializes the five secret fields.
func encodeFields(f models.EntryFields) ([]byte, error) {
	return json.Marshal(f)
}

// decodeFields parses a decrypted payload. It accepts exactly a JSON object
// with the five EntryFields keys, each holding a string.
func decodeFields(plain []byte) (models.EntryFields, error) {
	var raw map[string]any
	if err := json.Unmarshal(plain, &raw); err != nil {
		return models.EntryFields{}, fmt.Errorf("%w: %w", ErrUnreadableEntry, err)
	}
	if len(raw) != len(entryFieldKeys) {
		return models.EntryFields{}, fmt.Errorf("%w: expected %d fields, got %d", ErrUnreadableEntry, len(entryFieldKeys), len(raw))
	}

	values := make(map[string]string, len(entryFieldKeys))
	for _, k := range entryFieldKeys {
		v, ok := raw[k].(string)
		if !ok {
			return models.EntryFields{}, fmt.Errorf("%w: field %q missing or not a string", ErrUnreadableEntry, k)
		}
		values[k] = v
	}

	return models.EntryFields{
		Title:    values["title"],
		Username: values["username"],
		Password: values["password"],
		URL:      values["url"],
		Notes:    values["notes"],
	}, nil
}
