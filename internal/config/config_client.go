// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client to sign request bodies.
	HashKey string
	// Version is reported by the CLI.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the vault server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientVault holds vault session settings.
type ClientVault struct {
	AutoLockMinutes int
	CheckInterval   time.Duration
	KDFIterations   int
}

// AutoLockTimeout returns AutoLockMinutes as a duration.
func (v ClientVault) AutoLockTimeout() time.Duration {
	return time.Duration(v.AutoLockMinutes) * time.Minute
}

// ClientExtension holds browser-extension agent settings.
type ClientExtension struct {
	SettingsPath string
	LogPath      string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Vault contains session and auto-lock settings.
	Vault ClientVault
	// Extension contains agent settings.
	Extension ClientExtension
}

// GetClientConfig builds and validates a client-specific config view from the
// environment, the JSON file at jsonPath (or the CONFIG variable when
// jsonPath is empty) and the built-in defaults.
//
// Command-line flags are not parsed here; the CLI owns them and passes the
// config file path through.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientConfig()

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Vault: ClientVault{
			AutoLockMinutes: cfg.Vault.AutoLockMinutes,
			CheckInterval:   cfg.Vault.CheckInterval,
			KDFIterations:   cfg.Vault.KDFIterations,
		},
		Extension: ClientExtension{
			SettingsPath: cfg.Extension.SettingsPath,
			LogPath:      cfg.Extension.LogPath,
		},
	}
}
