// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-vault/internal/client"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/extension"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/tui"
	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/MKhiriev/secure-vault/models"
)

// ── Helpers ──

type fakeClient struct {
	signUpErr error
	signUps   []string
	signOuts  int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Unlock(context.Context, extension.UnlockRequest) (extension.Snapshot, error) {
	return extension.Snapshot{}, errBadCredentials
}

func (f *fakeClient) AddEntry(context.Context, models.EntryFields, []string) (models.DecryptedEntry, error) {
	return models.DecryptedEntry{}, vault.ErrVaultLocked
}

func (f *fakeClient) Entries() ([]models.DecryptedEntry, error) {
	return nil, vault.ErrVaultLocked
}

func (f *fakeClient) Lock() {}

func (f *fakeClient) SignUp(_ context.Context, email, _, _ string) (extension.Snapshot, error) {
	f.signUps = append(f.signUps, email)
	if f.signUpErr != nil {
		return extension.Snapshot{}, f.signUpErr
	}
	return extension.Snapshot{UID: "u1"}, nil
}

func (f *fakeClient) SignOut(context.Context) error {
	f.signOuts++
	return nil
}

func (f *fakeClient) Session() (*vault.Session, error) {
	return nil, client.ErrNoSession
}

var errBadCredentials = errors.New("invalid credentials")

type testCLI struct {
	*cli
	out    *bytes.Buffer
	errOut *bytes.Buffer
	client *fakeClient
}

func newTestCLI(input string) *testCLI {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	fake := &fakeClient{}

	c := newCLI(strings.NewReader(input), out, errOut, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"))
	c.cfg = &config.ClientConfig{}
	c.log = logger.Nop()
	c.isTerminal = func() bool { return false }
	c.newClient = func(*config.ClientConfig, *logger.Logger) (client.Client, error) { return fake, nil }

	return &testCLI{cli: c, out: out, errOut: errOut, client: fake}
}

func (tc *testCLI) run(args ...string) error {
	root := newRootCmd(tc.cli)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// ── ask ──

func TestAsk_ReadsOneLinePerField(t *testing.T) {
	tc := newTestCLI("alice@example.com\nsecret\n")

	values, err := tc.ask(context.Background(), "t",
		tui.Field{Label: "Email"},
		tui.Field{Label: "Password", Secret: true},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com", "secret"}, values)
}

func TestAsk_EmptyLineKeepsValue(t *testing.T) {
	tc := newTestCLI("\nnew\n")

	values, err := tc.ask(context.Background(), "t",
		tui.Field{Label: "Title", Value: "old"},
		tui.Field{Label: "Notes", Value: "old notes"},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"old", "new"}, values)
}

func TestAsk_MissingRequired(t *testing.T) {
	tc := newTestCLI("only-one\n")

	_, err := tc.ask(context.Background(), "t",
		tui.Field{Label: "Email"},
		tui.Field{Label: "Password"},
	)

	require.ErrorIs(t, err, errMissingInput)
	assert.Contains(t, err.Error(), "Password")
}

func TestAsk_OptionalAtEOF(t *testing.T) {
	tc := newTestCLI("title\n")

	values, err := tc.ask(context.Background(), "t",
		tui.Field{Label: "Title"},
		tui.Field{Label: "Notes", Optional: true},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"title", ""}, values)
}

func TestAsk_ScannerSharedAcrossCalls(t *testing.T) {
	tc := newTestCLI("first\nsecond\n")

	a, err := tc.ask(context.Background(), "t", tui.Field{Label: "A"})
	require.NoError(t, err)
	b, err := tc.ask(context.Background(), "t", tui.Field{Label: "B"})
	require.NoError(t, err)

	assert.Equal(t, []string{"first"}, a)
	assert.Equal(t, []string{"second"}, b)
}

// ── Offline commands ──

func TestVersionCmd(t *testing.T) {
	tc := newTestCLI("")
	tc.cfg = nil // offline commands must not load config

	require.NoError(t, tc.run("version"))

	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", tc.out.String())
}

func TestGenerateCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pattern string
	}{
		{name: "default", args: nil, pattern: `^.{16}$`},
		{name: "lowercase and digits", args: []string{"-l", "20", "--no-uppercase", "--no-symbols"}, pattern: `^[a-z0-9]{20}$`},
		{name: "digits only", args: []string{"--length", "6", "--no-uppercase", "--no-lowercase", "--no-symbols"}, pattern: `^[0-9]{6}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI("")
			tc.cfg = nil

			require.NoError(t, tc.run(append([]string{"generate"}, tt.args...)...))

			assert.Regexp(t, regexp.MustCompile(tt.pattern), strings.TrimSuffix(tc.out.String(), "\n"))
		})
	}
}

func TestGenerateCmd_NoClasses(t *testing.T) {
	tc := newTestCLI("")

	err := tc.run("generate", "--no-uppercase", "--no-lowercase", "--no-numbers", "--no-symbols")

	require.ErrorIs(t, err, generator.ErrInvalidOptions)
	assert.Empty(t, tc.out.String())
}

func TestStrengthCmd(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		tc := newTestCLI("")

		require.NoError(t, tc.run("strength", "Correct-Horse-9-Battery"))

		assert.Contains(t, tc.out.String(), "Strong (100)")
	})

	t.Run("prompt", func(t *testing.T) {
		tc := newTestCLI("abcdefgh\n")

		require.NoError(t, tc.run("strength"))

		assert.Contains(t, tc.out.String(), "Weak (31)")
	})
}

// ── Account commands ──

func TestRegisterCmd(t *testing.T) {
	tc := newTestCLI("alice@example.com\naccount-pw\nCorrect-Horse-9-Battery\nCorrect-Horse-9-Battery\n")

	require.NoError(t, tc.run("register"))

	assert.Equal(t, []string{"alice@example.com"}, tc.client.signUps)
	assert.Equal(t, 1, tc.client.signOuts)
	assert.Contains(t, tc.out.String(), "Account created for alice@example.com")
}

func TestRegisterCmd_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "confirmation differs",
			input:   "a@b.c\npw\nCorrect-Horse-9-Battery\nCorrect-Horse-9-Batterz\n",
			wantErr: errPasswordsDoNotMatch,
		},
		{
			name:    "weak master password",
			input:   "a@b.c\npw\nshort\nshort\n",
			wantErr: generator.ErrWeakMasterPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(tt.input)

			err := tc.run("register")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, tc.client.signUps)
		})
	}
}

func TestRegisterCmd_SignUpFails(t *testing.T) {
	tc := newTestCLI("a@b.c\npw\nCorrect-Horse-9-Battery\nCorrect-Horse-9-Battery\n")
	tc.client.signUpErr = errors.New("boom")

	err := tc.run("register")

	require.Error(t, err)
	assert.Equal(t, 0, tc.client.signOuts)
}

func TestLoginCmd_UnlockFails(t *testing.T) {
	tc := newTestCLI("a@b.c\npw\nmaster\n")

	err := tc.run("login")

	require.ErrorIs(t, err, errBadCredentials)
	assert.Empty(t, tc.out.String())
}

// ── Agent settings ──

func TestSeedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := extension.NewFileSettingsStore(path)

	require.NoError(t, seedSettings(path, store, 5))
	s, err := store.Settings()
	require.NoError(t, err)
	assert.Equal(t, 5, s.AutoLockMinutes)
	assert.True(t, s.AutoSave)

	// an existing file is left alone
	require.NoError(t, seedSettings(path, store, 30))
	s, err = store.Settings()
	require.NoError(t, err)
	assert.Equal(t, 5, s.AutoLockMinutes)
}
