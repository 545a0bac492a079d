// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"slices"

	"github.com/MKhiriev/secure-vault/models"
)

// applyPatch returns e with every non-nil field of p applied. e is not
// modified.
func applyPatch(e models.DecryptedEntry, p models.EntryPatch) models.DecryptedEntry {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Username != nil {
		e.Username = *p.Username
	}
	if p.Password != nil {
		e.Password = *p.Password
	}
	if p.URL != nil {
		e.URL = *p.URL
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Tags != nil {
		e.Tags = normalizeTags(*p.Tags)
	} else {
		e.Tags = normalizeTags(e.Tags)
	}
	return e
}

// normalizeTags copies tags so callers cannot alias session state, and turns
// nil into an empty list.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
