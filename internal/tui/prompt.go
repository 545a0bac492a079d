// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field describes one input of a prompt form.
type Field struct {
	Label string

	// Value pre-fills the input.
	Value string

	// Secret masks the input with '*'.
	Secret bool

	// Meter shows a live strength meter under the input.
	Meter bool

	// Optional fields may be submitted empty.
	Optional bool
}

// PromptModel is the Bubble Tea model of a form of text inputs. Enter on
// the last field submits; esc and ctrl+c cancel.
type PromptModel struct {
	title  string
	fields []Field
	inputs []textinput.Model
	focus  int

	submitted bool
	cancelled bool
	errMsg    string
}

// NewPromptModel creates a PromptModel with focus on the first field.
func NewPromptModel(title string, fields ...Field) *PromptModel {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(f.Label)
		in.CharLimit = 256
		in.Width = 40
		in.SetValue(f.Value)
		if f.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return &PromptModel{title: title, fields: fields, inputs: inputs}
}

// Init implements [tea.Model].
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. tab and shift+tab move between fields.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			if i := m.firstMissing(); i >= 0 {
				m.errMsg = m.fields[i].Label + " is required"
				m.setFocus(i)
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *PromptModel) View() string {
	var b strings.Builder
	for i, f := range m.fields {
		label := labelStyle.Render(f.Label)
		if i == m.focus {
			label = focusedStyle.Render(labelStyle.Render(f.Label))
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if f.Meter {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(StrengthMeter(m.inputs[i].Value()))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ esc: cancel")
}

// Values returns the current input values in field order.
func (m *PromptModel) Values() []string {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}
	return values
}

// Submitted reports whether the form was completed.
func (m *PromptModel) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user left the form.
func (m *PromptModel) Cancelled() bool {
	return m.cancelled
}

func (m *PromptModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *PromptModel) firstMissing() int {
	for i, f := range m.fields {
		if !f.Optional && m.inputs[i].Value() == "" {
			return i
		}
	}
	return -1
}
