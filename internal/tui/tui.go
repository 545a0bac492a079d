// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal widgets of the CLI: a masked input form
// and a password strength meter.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompt runs an interactive form on in/out and returns the values in field
// order. It returns ErrCancelled if the user leaves the form.
func Prompt(ctx context.Context, in io.Reader, out io.Writer, title string, fields ...Field) ([]string, error) {
	model := NewPromptModel(title, fields...)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}

	m := final.(*PromptModel)
	if !m.Submitted() {
		return nil, ErrCancelled
	}
	return m.Values(), nil
}
