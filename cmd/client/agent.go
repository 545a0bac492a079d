// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/secure-vault/internal/autolock"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/extension"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/workers"
	"github.com/MKhiriev/secure-vault/models"
)

func newAgentCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Run the browser extension bridge on stdin/stdout",
		Long: `Run the browser extension bridge. The browser starts this command as a
native messaging host and exchanges length-prefixed JSON frames on stdin and
stdout. Logs go to the agent log file.`,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.log.WithContext(cmd.Context())

			settings := extension.NewFileSettingsStore(c.cfg.Extension.SettingsPath)
			if err := seedSettings(c.cfg.Extension.SettingsPath, settings, c.cfg.Vault.AutoLockMinutes); err != nil {
				c.log.Err(err).Str("func", "agentCmd").Msg("failed to write initial settings")
			}

			app, err := c.newClient(c.cfg, c.log)
			if err != nil {
				return err
			}

			conn := extension.NewNativeConn(c.in, c.out)
			background := extension.NewBackground(
				extension.NewMemoryStorage(),
				settings,
				generator.New(crypto.NewRandomSource()),
				c.log,
				extension.WithVault(app),
				extension.WithSink(conn.Sink()),
				extension.WithMonitorOptions(autolock.WithInterval(c.cfg.Vault.CheckInterval)),
			)

			c.log.Info().Str("func", "agentCmd").Msg("agent started")
			err = workers.NewWorkers(c.log,
				workers.WorkerFunc(background.Run),
				workers.WorkerFunc(func(ctx context.Context) error {
					return extension.Serve(ctx, conn, background)
				}),
			).Run(ctx)

			signOut(ctx, c, app)
			c.log.Info().Str("func", "agentCmd").Msg("agent stopped")
			return err
		},
	}
}

// seedSettings writes the configured auto-lock timeout on first start.
// Later changes come from the extension and are kept.
func seedSettings(path string, settings extension.SettingsStore, autoLockMinutes int) error {
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	s := models.DefaultSettings()
	if autoLockMinutes > 0 {
		s.AutoLockMinutes = autoLockMinutes
	}
	return settings.SaveSettings(s)
}
