// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged server [StructuredConfig] can start the
// server: a known driver with a DSN, and a token signing key.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnsupportedDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Vault.AutoLockMinutes <= 0 || cfg.Vault.CheckInterval <= 0 ||
		cfg.Vault.KDFIterations < MinKDFIterations {
		return ErrInvalidVaultConfigs
	}

	if cfg.Extension.SettingsPath == "" {
		return ErrInvalidExtensionConfigs
	}

	return nil
}
