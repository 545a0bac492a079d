// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-vault/models"
)

func TestHostname(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://www.Example.com/path?q=1", want: "example.com"},
		{in: "http://sub.example.com:8080", want: "sub.example.com"},
		{in: "example.com", want: "example.com"},
		{in: "www.example.com/login", want: "example.com"},
		{in: "", want: ""},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Hostname(tt.in))
		})
	}
}

func TestMatchesSite(t *testing.T) {
	tests := []struct {
		name     string
		entryURL string
		siteURL  string
		want     bool
	}{
		{name: "same host", entryURL: "https://github.com", siteURL: "https://github.com/login", want: true},
		{name: "www ignored", entryURL: "https://www.github.com", siteURL: "github.com", want: true},
		{name: "subdomain of entry", entryURL: "github.com", siteURL: "https://gist.github.com", want: true},
		{name: "entry is subdomain", entryURL: "https://accounts.google.com", siteURL: "https://google.com", want: true},
		{name: "different", entryURL: "https://gitlab.com", siteURL: "https://github.com", want: false},
		{name: "empty entry url", entryURL: "", siteURL: "https://github.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSite(tt.entryURL, tt.siteURL))
		})
	}
}

func TestMatches(t *testing.T) {
	e := models.DecryptedEntry{
		EntryFields: models.EntryFields{Title: "Work Mail", Username: "Alice", URL: "https://mail.corp", Notes: "hidden"},
		Tags:        []string{"Office"},
	}

	assert.True(t, Matches(e, "work"))
	assert.True(t, Matches(e, "alice"))
	assert.True(t, Matches(e, "CORP"))
	assert.True(t, Matches(e, "office"))
	assert.True(t, Matches(e, "  "))
	assert.False(t, Matches(e, "hidden"), "notes are not searched")
}

func TestDecodeFields(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "valid", in: `{"title":"a","username":"b","password":"c","url":"d","notes":"e"}`},
		{name: "missing key", in: `{"title":"a","username":"b","password":"c","url":"d"}`, wantErr: true},
		{name: "extra key", in: `{"title":"a","username":"b","password":"c","url":"d","notes":"e","x":"y"}`, wantErr: true},
		{name: "null value", in: `{"title":null,"username":"b","password":"c","url":"d","notes":"e"}`, wantErr: true},
		{name: "array", in: `["a","b","c","d","e"]`, wantErr: true},
		{name: "not json", in: `title=a`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFields([]byte(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnreadableEntry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.EntryFields{Title: "a", Username: "b", Password: "c", URL: "d", Notes: "e"}, got)
		})
	}
}

func TestApplyPatch_DoesNotAliasInput(t *testing.T) {
	e := models.DecryptedEntry{ID: "e1", EntryFields: models.EntryFields{Title: "t"}, Tags: []string{"a"}}

	out := applyPatch(e, models.EntryPatch{})
	out.Tags[0] = "changed"

	assert.Equal(t, []string{"a"}, e.Tags)
	assert.Equal(t, "t", out.Title)
}
