// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(18)
	focusedStyle = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// meterColors maps strength bands to ANSI colors.
var meterColors = map[string]lipgloss.Color{
	"Weak":   lipgloss.Color("9"),
	"Medium": lipgloss.Color("11"),
	"Strong": lipgloss.Color("12"),
}
