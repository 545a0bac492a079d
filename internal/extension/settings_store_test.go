// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extension

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-vault/models"
)

func TestFileSettingsStore_DefaultsOnFirstLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	s := NewFileSettingsStore(path)

	got, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)

	_, err = os.Stat(path)
	assert.NoError(t, err, "defaults are written on first load")

	hosts, err := s.Blacklist()
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestFileSettingsStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, NewFileSettingsStore(path).SaveSettings(models.Settings{AutoSave: false, AutoLockMinutes: 30}))
	require.NoError(t, NewFileSettingsStore(path).SetBlacklist([]string{" Bank.Example ", "bank.example", "", "shop.example"}))

	s := NewFileSettingsStore(path)
	got, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, models.Settings{AutoSave: false, AutoLockMinutes: 30}, got)

	hosts, err := s.Blacklist()
	require.NoError(t, err)
	assert.Equal(t, []string{"bank.example", "shop.example"}, hosts)

	ok, err := s.IsBlacklisted("BANK.example")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileSettingsStore_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  auto_save: false\n  auto_lock_minutes: 0\nblacklist:\n  - a.example\n"), 0o600))

	s := NewFileSettingsStore(path)
	got, err := s.Settings()
	require.NoError(t, err)
	assert.False(t, got.AutoSave)
	assert.Equal(t, models.DefaultAutoLockMinutes, got.AutoLockMinutes)
}

func TestFileSettingsStore_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: [unclosed"), 0o600))

	_, err := NewFileSettingsStore(path).Settings()
	assert.Error(t, err)
}
