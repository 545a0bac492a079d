// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Built-in defaults applied after every other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTokenIssuer     = "secure-vault"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultAutoLockMinutes = 15
	DefaultCheckInterval   = time.Minute
	DefaultKDFIterations   = 100_000
)

// MinKDFIterations is the lowest PBKDF2 iteration count accepted in config.
const MinKDFIterations = 100_000

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Vault: Vault{
			AutoLockMinutes: DefaultAutoLockMinutes,
			CheckInterval:   DefaultCheckInterval,
			KDFIterations:   DefaultKDFIterations,
		},
		Extension: Extension{
			SettingsPath: defaultSettingsPath(),
		},
	}
}

// defaultSettingsPath resolves to <user config dir>/secure-vault/settings.yaml,
// falling back to the working directory.
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "settings.yaml"
	}
	return filepath.Join(dir, "secure-vault", "settings.yaml")
}
