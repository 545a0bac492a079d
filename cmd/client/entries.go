// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/tui"
	"github.com/MKhiriev/secure-vault/models"
)

func newListCmd(c *cli) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vault entries",
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
			if tag != "" {
				entries = slices.DeleteFunc(entries, func(e models.DecryptedEntry) bool {
					return !hasTag(e, tag)
				})
			}
			return printEntries(c.out, entries)
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "only entries with this tag")

	return cmd
}

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find entries by title, username, URL or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, done, err := c.unlock(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			entries, err := session.Search(args[0])
			if err != nil {
				return err
			}
			return printEntries(c.out, entries)
		},
	}
}

func newShowCmd(c *cli) *cobra.Command {
	var copyPassword bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry including its password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, done, err := c.unlock(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			entry, err := session.Entry(args[0])
			if err != nil {
				return err
			}

			password := entry.Password
			if copyPassword {
				if err = copyToClipboard(password); err != nil {
					return err
				}
				password = "(copied to clipboard)"
			}

			tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "ID:\t%s\n", entry.ID)
			fmt.Fprintf(tw, "Title:\t%s\n", entry.Title)
			fmt.Fprintf(tw, "Username:\t%s\n", entry.Username)
			fmt.Fprintf(tw, "Password:\t%s\n", password)
			fmt.Fprintf(tw, "URL:\t%s\n", entry.URL)
			fmt.Fprintf(tw, "Notes:\t%s\n", entry.Notes)
			fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(entry.Tags, ", "))
			fmt.Fprintf(tw, "Updated:\t%s\n", entry.UpdatedAt.Format("2006-01-02 15:04"))
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&copyPassword, "copy", false, "copy the password to the clipboard instead of printing it")

	return cmd
}

func newAddCmd(c *cli) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Long: `Add an entry. Leave the password empty to generate one with every
character class enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, done, err := c.unlock(ctx)
			if err != nil {
				return err
			}
			defer done()

			values, err := c.ask(ctx, "New entry", entryFields(models.DecryptedEntry{})...)
			if err != nil {
				return err
			}
			fields, tags := fieldsFromValues(values)

			if fields.Password == "" {
				opts := generator.DefaultOptions()
				opts.Length = length
				if fields.Password, err = generator.New(crypto.NewRandomSource()).Generate(opts); err != nil {
					return err
				}
			}

			entry, err := session.AddEntry(ctx, fields, tags)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.out, "Added %q with id %s.\n", entry.Title, entry.ID)
			return err
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", generator.DefaultLength, "length of a generated password")

	return cmd
}

func newUpdateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id>",
		Short: "Change an entry",
		Long: `Change an entry. The form starts with the current values; without a
terminal, an empty input line keeps the current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, done, err := c.unlock(ctx)
			if err != nil {
				return err
			}
			defer done()

			current, err := session.Entry(args[0])
			if err != nil {
				return err
			}

			values, err := c.ask(ctx, "Edit entry", entryFields(current)...)
			if err != nil {
				return err
			}

			patch := buildPatch(current, values)
			if patch.IsEmpty() {
				return errNothingToChange
			}

			if _, err = session.UpdateEntry(ctx, current.ID, patch); err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.out, "Updated %s.\n", current.ID)
			return err
		},
	}
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, done, err := c.unlock(ctx)
			if err != nil {
				return err
			}
			defer done()

			if _, err = session.Entry(args[0]); err != nil {
				return err
			}
			if err = session.DeleteEntry(ctx, args[0]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.out, "Deleted %s.\n", args[0])
			return err
		},
	}
}

// entryFields is the form for add and update, pre-filled from e.
func entryFields(e models.DecryptedEntry) []tui.Field {
	return []tui.Field{
		{Label: "Title", Value: e.Title},
		{Label: "Username", Value: e.Username, Optional: true},
		{Label: "Password", Value: e.Password, Secret: true, Meter: true, Optional: true},
		{Label: "URL", Value: e.URL, Optional: true},
		{Label: "Notes", Value: e.Notes, Optional: true},
		{Label: "Tags", Value: strings.Join(e.Tags, ", "), Optional: true},
	}
}

// fieldsFromValues is the inverse of entryFields.
func fieldsFromValues(values []string) (models.EntryFields, []string) {
	return models.EntryFields{
		Title:    values[0],
		Username: values[1],
		Password: values[2],
		URL:      values[3],
		Notes:    values[4],
	}, parseTags(values[5])
}

// buildPatch returns a patch holding only the fields that differ from e.
func buildPatch(e models.DecryptedEntry, values []string) models.EntryPatch {
	fields, tags := fieldsFromValues(values)

	var patch models.EntryPatch
	if fields.Title != e.Title {
		patch.Title = &fields.Title
	}
	if fields.Username != e.Username {
		patch.Username = &fields.Username
	}
	if fields.Password != e.Password && fields.Password != "" {
		patch.Password = &fields.Password
	}
	if fields.URL != e.URL {
		patch.URL = &fields.URL
	}
	if fields.Notes != e.Notes {
		patch.Notes = &fields.Notes
	}
	if !slices.Equal(tags, parseTags(strings.Join(e.Tags, ","))) {
		patch.Tags = &tags
	}
	return patch
}

// parseTags splits a comma separated list, dropping blanks.
func parseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func hasTag(e models.DecryptedEntry, tag string) bool {
	return slices.ContainsFunc(e.Tags, func(t string) bool { return strings.EqualFold(t, tag) })
}

func printEntries(w io.Writer, entries []models.DecryptedEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tUSERNAME\tURL\tTAGS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Username, e.URL, strings.Join(e.Tags, ","))
	}
	return tw.Flush()
}

func copyToClipboard(s string) error {
	if clipboard.Unsupported {
		return errClipboardNotAvailable
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("%w: %w", errClipboardNotAvailable, err)
	}
	return nil
}
