// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/charmbracelet/lipgloss"
)

// meterWidth is the number of cells in the strength bar.
const meterWidth = 20

// StrengthMeter renders a colored bar and label for password, e.g.
// "█████████░░░░░░░░░░░ Medium (45)".
func StrengthMeter(password string) string {
	score := generator.Score(password)
	label := generator.Label(score)

	filled := score * meterWidth / generator.MaxScore
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)

	style := lipgloss.NewStyle().Foreground(meterColors[string(label)])
	return fmt.Sprintf("%s %s (%d)", style.Render(bar), style.Render(string(label)), score)
}
