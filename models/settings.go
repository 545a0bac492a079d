// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Default values for persisted extension settings.
const (
	DefaultAutoSave        = true
	DefaultAutoLockMinutes = 15
)

// Settings are the user preferences persisted by the extension.
type Settings struct {
	// AutoSave enables the "save these credentials?" prompt.
	AutoSave bool `json:"autoSave" yaml:"auto_save"`

	// AutoLockMinutes is the idle time after which the vault locks.
	AutoLockMinutes int `json:"autoLockMinutes" yaml:"auto_lock_minutes"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		AutoSave:        DefaultAutoSave,
		AutoLockMinutes: DefaultAutoLockMinutes,
	}
}

// AutoLockTimeout converts AutoLockMinutes into a duration.
func (s Settings) AutoLockTimeout() time.Duration {
	return time.Duration(s.AutoLockMinutes) * time.Minute
}
