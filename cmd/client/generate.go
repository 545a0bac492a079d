// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/tui"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		opts                                        = generator.DefaultOptions()
		noUpper, noLower, noNumbers, noSymbols, cpy bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Long: `Generate a random password from a cryptographically secure source.

Examples:
  # 16 characters, every class
  secure-vault generate

  # 20 lowercase letters and digits
  secure-vault generate -l 20 --no-uppercase --no-symbols

  # copy instead of printing
  secure-vault generate --copy`,
		Args:        cobra.NoArgs,
		Annotations: offline,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IncludeUppercase = !noUpper
			opts.IncludeLowercase = !noLower
			opts.IncludeNumbers = !noNumbers
			opts.IncludeSymbols = !noSymbols

			password, err := generator.New(crypto.NewRandomSource()).Generate(opts)
			if err != nil {
				return err
			}

			if cpy {
				if err = copyToClipboard(password); err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.errOut, "Password copied to clipboard")
				return err
			}

			_, err = fmt.Fprintln(c.out, password)
			return err
		},
	}
	cmd.Flags().IntVarP(&opts.Length, "length", "l", generator.DefaultLength, "password length")
	cmd.Flags().BoolVar(&noUpper, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVar(&cpy, "copy", false, "copy the password to the clipboard instead of printing it")

	return cmd
}

func newStrengthCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate a password",
		Long: `Rate a password from 0 to 100. Without an argument the password is
read from a masked prompt, which keeps it out of the shell history.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: offline,
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				values, err := c.ask(cmd.Context(), "Password strength", tui.Field{Label: "Password", Secret: true, Meter: true})
				if err != nil {
					return err
				}
				password = values[0]
			}

			_, err := fmt.Fprintln(c.out, tui.StrengthMeter(password))
			return err
		},
	}
}
