// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        AppBuildInfo
		wantString  string
		wantRelease bool
	}{
		{
			name:        "all set",
			info:        NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"),
			wantString:  "Build version: v1.2.0\nBuild date: 2026-10-01\nBuild commit: abc123",
			wantRelease: true,
		},
		{
			name:        "nothing set",
			info:        NewAppBuildInfo("", "", ""),
			wantString:  "Build version: N/A\nBuild date: N/A\nBuild commit: N/A",
			wantRelease: false,
		},
		{
			name:        "commit only",
			info:        NewAppBuildInfo("", "", "abc123"),
			wantString:  "Build version: N/A\nBuild date: N/A\nBuild commit: abc123",
			wantRelease: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantString, tt.info.String())
			assert.Equal(t, tt.wantRelease, tt.info.IsRelease())
		})
	}
}

func TestAppBuildInfo_Getters(t *testing.T) {
	info := NewAppBuildInfo("v1", "today", "deadbeef")

	assert.Equal(t, "v1", info.BuildVersion())
	assert.Equal(t, "today", info.BuildDate())
	assert.Equal(t, "deadbeef", info.BuildCommit())
}
