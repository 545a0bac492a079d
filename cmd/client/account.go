// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/secure-vault/internal/client"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/tui"
)

func newRegisterCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account and an empty vault",
		Long: `Create an account and an empty vault.

The account password signs you in to the server. The master password never
leaves this machine: it derives the key that encrypts your entries and cannot
be recovered if lost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			values, err := c.ask(ctx, "Create account",
				tui.Field{Label: "Email"},
				tui.Field{Label: "Password", Secret: true},
				tui.Field{Label: "Master password", Secret: true, Meter: true},
				tui.Field{Label: "Confirm master", Secret: true},
			)
			if err != nil {
				return err
			}
			email, password, master, confirm := values[0], values[1], values[2], values[3]

			if master != confirm {
				return errPasswordsDoNotMatch
			}
			if err = generator.ValidateMasterPassword(master); err != nil {
				return err
			}

			app, err := c.newClient(c.cfg, c.log)
			if err != nil {
				return err
			}

			snapshot, err := app.SignUp(ctx, email, password, master)
			if err != nil {
				return err
			}
			defer signOut(ctx, c, app)

			c.log.Info().Str("func", "registerCmd").Str("uid", snapshot.UID).Msg("account created")
			_, err = fmt.Fprintf(c.out, "Account created for %s. Keep your master password safe: it cannot be reset.\n", email)
			return err
		},
	}
}

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check your credentials by unlocking the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, done, err := c.unlock(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			entries, err := session.Entries()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.out, "Vault unlocked: %d %s.\n", len(entries), plural(len(entries), "entry", "entries"))
			return err
		},
	}
}

// signOut ends the server session even when ctx is already cancelled.
func signOut(ctx context.Context, c *cli, app client.Client) {
	if err := app.SignOut(context.WithoutCancel(ctx)); err != nil {
		c.log.Err(err).Str("func", "signOut").Msg("sign out failed")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
