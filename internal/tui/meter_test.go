// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/stretchr/testify/assert"
)

func TestStrengthMeter(t *testing.T) {
	tests := []struct {
		password  string
		wantLabel string
	}{
		{password: "", wantLabel: "Weak"},
		{password: "abcdefgh", wantLabel: "Weak"},
		{password: "abcdefgh1", wantLabel: "Medium"},
		{password: "Correct-Horse-9-Battery", wantLabel: "Strong"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLabel+"/"+tt.password, func(t *testing.T) {
			got := StrengthMeter(tt.password)
			score := generator.Score(tt.password)

			assert.Contains(t, got, tt.wantLabel)
			assert.Contains(t, got, fmt.Sprintf("(%d)", score))

			cells := strings.Count(got, "█") + strings.Count(got, "░")
			assert.Equal(t, meterWidth, cells)
			assert.Equal(t, score*meterWidth/generator.MaxScore, strings.Count(got, "█"))
		})
	}
}
