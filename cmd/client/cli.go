// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/secure-vault/internal/client"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/extension"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/tui"
	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/MKhiriev/secure-vault/models"
)

var (
	errMissingInput          = errors.New("missing input")
	errPasswordsDoNotMatch   = errors.New("master passwords do not match")
	errNothingToChange       = errors.New("nothing to change")
	errClipboardNotAvailable = errors.New("clipboard is not available")
)

// annotationOffline marks commands that need neither config nor server.
const annotationOffline = "offline"

var offline = map[string]string{annotationOffline: ""}

// cli holds what every command needs. Fields are replaced in tests.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	buildInfo  models.AppBuildInfo
	configPath string

	cfg *config.ClientConfig
	log *logger.Logger

	isTerminal func() bool
	newClient  func(cfg *config.ClientConfig, log *logger.Logger) (client.Client, error)

	lines *bufio.Scanner
}

func newCLI(in io.Reader, out, errOut io.Writer, buildInfo models.AppBuildInfo) *cli {
	return &cli{
		in:         in,
		out:        out,
		errOut:     errOut,
		buildInfo:  buildInfo,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		newClient: func(cfg *config.ClientConfig, log *logger.Logger) (client.Client, error) {
			return client.NewApp(cfg, log)
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "secure-vault",
		Short:         "Zero-knowledge password vault",
		Long:          "All encryption happens on this machine; the server only stores ciphertext.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := cmd.Annotations[annotationOffline]; ok {
				return nil
			}
			return c.loadConfig(cmd.Name())
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a JSON config file")

	root.AddCommand(
		newRegisterCmd(c),
		newLoginCmd(c),
		newListCmd(c),
		newSearchCmd(c),
		newShowCmd(c),
		newAddCmd(c),
		newUpdateCmd(c),
		newDeleteCmd(c),
		newGenerateCmd(c),
		newStrengthCmd(c),
		newAgentCmd(c),
		newVersionCmd(c),
	)

	return root
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: offline,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.out, c.buildInfo)
			return err
		},
	}
}

// loadConfig reads the client config once. The agent logs to its own file;
// every other command shares the CLI log.
func (c *cli) loadConfig(command string) error {
	if c.cfg != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = c.buildInfo.BuildVersion()
	}
	c.cfg = cfg

	if c.log == nil {
		role := "secure-vault-cli"
		if command == "agent" {
			role = "secure-vault-agent"
		}
		c.log = logger.NewClientLogger(role, cfg.Extension.LogPath)
	}
	return nil
}

// ask collects one value per field. On a terminal it runs the interactive
// form; otherwise it reads one line per field from c.in, where an empty
// line keeps the field's pre-filled value.
func (c *cli) ask(ctx context.Context, title string, fields ...tui.Field) ([]string, error) {
	if c.isTerminal() {
		return tui.Prompt(ctx, c.in, c.out, title, fields...)
	}

	if c.lines == nil {
		c.lines = bufio.NewScanner(c.in)
	}

	values := make([]string, len(fields))
	for i, f := range fields {
		value := f.Value
		if c.lines.Scan() {
			if line := c.lines.Text(); line != "" {
				value = line
			}
		} else if err := c.lines.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Label, err)
		}

		if value == "" && !f.Optional {
			return nil, fmt.Errorf("%w: %s", errMissingInput, f.Label)
		}
		values[i] = value
	}
	return values, nil
}

// unlock signs in and opens the vault. The returned function signs out and
// must be called when the command is done.
func (c *cli) unlock(ctx context.Context) (*vault.Session, func(), error) {
	values, err := c.ask(ctx, "Unlock vault",
		tui.Field{Label: "Email"},
		tui.Field{Label: "Password", Secret: true},
		tui.Field{Label: "Master password", Secret: true},
	)
	if err != nil {
		return nil, nil, err
	}

	app, err := c.newClient(c.cfg, c.log)
	if err != nil {
		return nil, nil, err
	}

	if _, err = app.Unlock(ctx, extension.UnlockRequest{
		Email:          values[0],
		Password:       values[1],
		MasterPassword: values[2],
	}); err != nil {
		return nil, nil, err
	}

	session, err := app.Session()
	if err != nil {
		return nil, nil, err
	}

	return session, func() { signOut(ctx, c, app) }, nil
}
