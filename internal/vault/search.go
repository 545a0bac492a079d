// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/secure-vault/models"
)

// Matches reports whether query occurs, case-insensitively, in the title,
// username, URL or any tag of e. An empty query matches everything.
func Matches(e models.DecryptedEntry, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	for _, field := range []string{e.Title, e.Username, e.URL} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Hostname extracts the host of raw, lower-cased and without a leading
// "www.". Bare hostnames without a scheme are accepted. It returns "" when
// no host can be found.
func Hostname(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// MatchesSite reports whether the stored entryURL belongs to siteURL: after
// stripping "www." either hostname contains the other.
func MatchesSite(entryURL, siteURL string) bool {
	a, b := Hostname(entryURL), Hostname(siteURL)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
