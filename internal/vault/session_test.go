// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/MKhiriev/secure-vault/models"
)

const (
	testUID      = "user-1"
	testPassword = "Correct-Horse-Battery-9"
)

var testSalt = []byte("0123456789abcdef")

// testKey is derived once; PBKDF2 at full strength is slow enough to matter.
var testKey = sync.OnceValues(func() (crypto.Key, error) {
	return crypto.NewKeyDeriver(crypto.NewRandomSource()).
		DeriveKey(testPassword, testSalt, crypto.DefaultKDFParams())
})

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

type fixture struct {
	store   *mock.MockStore
	cipher  crypto.Cipher
	key     crypto.Key
	cfg     models.CryptoConfig
	now     time.Time
	session *vault.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	random := crypto.NewRandomSource()

	key, err := testKey()
	require.NoError(t, err)

	f := &fixture{
		store:  mock.NewMockStore(ctrl),
		cipher: crypto.NewCipher(random),
		key:    key,
		cfg:    models.CryptoConfig{Salt: base64.StdEncoding.EncodeToString(testSalt)},
		now:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.session = vault.NewSession(testUID, f.store, crypto.NewKeyDeriver(random), f.cipher,
		vault.WithClock(func() time.Time { return f.now }))
	return f
}

func (f *fixture) seal(t *testing.T, id string, fields models.EntryFields, tags ...string) models.Entry {
	t.Helper()
	plain, err := json.Marshal(fields)
	require.NoError(t, err)
	enc, err := f.cipher.Encrypt(plain, f.key)
	require.NoError(t, err)
	return models.Entry{
		ID:            id,
		EncryptedData: enc.Data,
		IV:            enc.IV,
		Tags:          tags,
		CreatedAt:     f.now.Add(-time.Hour),
		UpdatedAt:     f.now.Add(-time.Hour),
	}
}

func (f *fixture) open(t *testing.T, records ...models.Entry) []models.DecryptedEntry {
	t.Helper()
	f.store.EXPECT().GetAll(gomock.Any(), testUID).Return(records, nil)
	require.NoError(t, f.session.Unlock(testContext(), testPassword, f.cfg))
	entries, err := f.session.Entries()
	require.NoError(t, err)
	return entries
}

func (f *fixture) decrypt(t *testing.T, rec models.EntryRecord) models.EntryFields {
	t.Helper()
	plain, err := f.cipher.Decrypt(rec.EncryptedData, rec.IV, f.key)
	require.NoError(t, err)
	var fields models.EntryFields
	err = json.Unmarshal(plain, &fields)
	require.NoError(t, err)
	return fields
}

func TestUnlock_SkipsUnreadableEntriesAndKeepsOrder(t *testing.T) {
	f := newFixture(t)

	records := make([]models.Entry, 0, 5)
	for _, id := range []string{"e1", "e2", "e3", "e4", "e5"} {
		records = append(records, f.seal(t, id, models.EntryFields{Title: "title " + id}))
	}
	records[2].EncryptedData = base64.StdEncoding.EncodeToString([]byte("definitely not aes-cbc output!!!"))

	entries := f.open(t, records...)

	require.Len(t, entries, 4)
	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
		assert.Equal(t, "title "+e.ID, e.Title)
	}
	assert.Equal(t, []string{"e1", "e2", "e4", "e5"}, ids)
	assert.Equal(t, vault.StateUnlocked, f.session.State())
}

func TestUnlock_RejectsPayloadsWithWrongShape(t *testing.T) {
	f := newFixture(t)

	good := f.seal(t, "good", models.EntryFields{Title: "ok"})

	extra, err := f.cipher.Encrypt([]byte(`{"title":"a","username":"b","password":"c","url":"d","notes":"e","otp":"f"}`), f.key)
	require.NoError(t, err)
	numeric, err := f.cipher.Encrypt([]byte(`{"title":1,"username":"b","password":"c","url":"d","notes":"e"}`), f.key)
	require.NoError(t, err)

	entries := f.open(t,
		models.Entry{ID: "extra", EncryptedData: extra.Data, IV: extra.IV},
		good,
		models.Entry{ID: "numeric", EncryptedData: numeric.Data, IV: numeric.IV},
	)

	require.Len(t, entries, 1)
	assert.Equal(t, "good", entries[0].ID)
}

func TestUnlock_EmptyVault(t *testing.T) {
	f := newFixture(t)

	entries := f.open(t)

	assert.Empty(t, entries)
	assert.True(t, f.session.IsUnlocked())
}

func TestUnlock_WrongPasswordWithVerifier(t *testing.T) {
	f := newFixture(t)

	v, err := crypto.NewVerifier(f.cipher, f.key)
	require.NoError(t, err)
	f.cfg.Verifier = &v

	// no GetAll expectation: the store must not be read
	err = f.session.Unlock(testContext(), "not-the-password", f.cfg)

	assert.ErrorIs(t, err, vault.ErrWrongMasterPassword)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
	assert.Equal(t, vault.StateLocked, f.session.State())
}

func TestUnlock_CorrectPasswordWithVerifier(t *testing.T) {
	f := newFixture(t)

	v, err := crypto.NewVerifier(f.cipher, f.key)
	require.NoError(t, err)
	f.cfg.Verifier = &v

	entries := f.open(t, f.seal(t, "e1", models.EntryFields{Title: "one"}))
	assert.Len(t, entries, 1)
}

func TestUnlock_WrongPasswordWithoutVerifierDropsEverything(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().GetAll(gomock.Any(), testUID).Return([]models.Entry{
		f.seal(t, "e1", models.EntryFields{Title: "one"}),
	}, nil)

	require.NoError(t, f.session.Unlock(testContext(), "not-the-password", f.cfg))

	entries, err := f.session.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnlock_Failures(t *testing.T) {
	t.Run("store unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetAll(gomock.Any(), testUID).Return(nil, errors.New("connection refused"))

		err := f.session.Unlock(testContext(), testPassword, f.cfg)

		assert.ErrorIs(t, err, vault.ErrStoreUnavailable)
		assert.Equal(t, vault.StateLocked, f.session.State())
	})

	t.Run("salt not base64", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Salt = "%%%"

		err := f.session.Unlock(testContext(), testPassword, f.cfg)

		assert.ErrorIs(t, err, crypto.ErrKeyDerivation)
		assert.Equal(t, vault.StateLocked, f.session.State())
	})

	t.Run("empty master password", func(t *testing.T) {
		f := newFixture(t)

		err := f.session.Unlock(testContext(), "", f.cfg)

		assert.ErrorIs(t, err, crypto.ErrKeyDerivation)
	})
}

func TestLock_ClearsStateAndBlocksStore(t *testing.T) {
	f := newFixture(t)
	f.open(t, f.seal(t, "e1", models.EntryFields{Title: "one"}))

	f.session.Lock()
	f.session.Lock()

	assert.Equal(t, vault.StateLocked, f.session.State())
	assert.False(t, f.session.IsUnlocked())
	_, err := f.session.Entry("e1")
	assert.ErrorIs(t, err, vault.ErrVaultLocked)

	// the mock fails the test on any unexpected store call
	ctx := testContext()
	_, err = f.session.AddEntry(ctx, models.EntryFields{Title: "x"}, nil)
	assert.ErrorIs(t, err, vault.ErrVaultLocked)

	title := "y"
	_, err = f.session.UpdateEntry(ctx, "e1", models.EntryPatch{Title: &title})
	assert.ErrorIs(t, err, vault.ErrVaultLocked)

	assert.ErrorIs(t, f.session.DeleteEntry(ctx, "e1"), vault.ErrVaultLocked)

	_, err = f.session.Entries()
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
	_, err = f.session.Search("one")
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
}

func TestAddEntry(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	fields := models.EntryFields{Title: "Bank", Username: "me", Password: "s3cret", URL: "https://bank.example"}

	var stored models.EntryRecord
	f.store.EXPECT().Add(gomock.Any(), testUID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rec models.EntryRecord) (string, error) {
			stored = rec
			return "new-id", nil
		})

	got, err := f.session.AddEntry(testContext(), fields, []string{"finance"})
	require.NoError(t, err)

	assert.Equal(t, "new-id", got.ID)
	assert.Equal(t, fields, got.EntryFields)
	assert.Equal(t, []string{"finance"}, got.Tags)
	assert.Equal(t, f.now, got.CreatedAt)
	assert.Equal(t, f.now, got.UpdatedAt)

	assert.Equal(t, fields, f.decrypt(t, stored))
	assert.Equal(t, []string{"finance"}, stored.Tags)

	entries, err := f.session.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, got, entries[0])
}

func TestAddEntry_NilTagsBecomeEmpty(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	f.store.EXPECT().Add(gomock.Any(), testUID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rec models.EntryRecord) (string, error) {
			assert.NotNil(t, rec.Tags)
			assert.Empty(t, rec.Tags)
			return "id", nil
		})

	got, err := f.session.AddEntry(testContext(), models.EntryFields{Title: "t"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Tags)
}

func TestAddEntry_StoreFailureLeavesMemoryUnchanged(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	f.store.EXPECT().Add(gomock.Any(), testUID, gomock.Any()).Return("", errors.New("timeout"))

	_, err := f.session.AddEntry(testContext(), models.EntryFields{Title: "t"}, nil)
	assert.ErrorIs(t, err, vault.ErrStoreUnavailable)

	entries, err := f.session.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddEntry_LockDuringStoreCallDiscardsResult(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	f.store.EXPECT().Add(gomock.Any(), testUID, gomock.Any()).
		DoAndReturn(func(context.Context, string, models.EntryRecord) (string, error) {
			f.session.Lock()
			return "id", nil
		})

	_, err := f.session.AddEntry(testContext(), models.EntryFields{Title: "t"}, nil)

	assert.ErrorIs(t, err, vault.ErrVaultLocked)
	assert.Equal(t, vault.StateLocked, f.session.State())
	_, err = f.session.Entries()
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
}

func TestUpdateEntry_MergesPatchAndReencryptsEverything(t *testing.T) {
	f := newFixture(t)
	original := models.EntryFields{Title: "Mail", Username: "me@example.com", Password: "old", URL: "https://mail.example", Notes: "2fa on"}
	f.open(t, f.seal(t, "e1", original, "personal"))

	var stored models.EntryRecord
	f.store.EXPECT().Update(gomock.Any(), testUID, "e1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, rec models.EntryRecord) error {
			stored = rec
			return nil
		})

	f.now = f.now.Add(time.Minute)
	newPassword := "new"
	got, err := f.session.UpdateEntry(testContext(), "e1", models.EntryPatch{Password: &newPassword})
	require.NoError(t, err)

	want := original
	want.Password = "new"
	assert.Equal(t, want, got.EntryFields)
	assert.Equal(t, want, f.decrypt(t, stored))
	assert.Equal(t, []string{"personal"}, stored.Tags)
	assert.Equal(t, f.now, got.UpdatedAt)

	inMemory, err := f.session.Entry("e1")
	require.NoError(t, err)
	assert.Equal(t, got, inMemory)
}

func TestUpdateEntry_ReplacesTags(t *testing.T) {
	f := newFixture(t)
	f.open(t, f.seal(t, "e1", models.EntryFields{Title: "t"}, "a", "b"))

	f.store.EXPECT().Update(gomock.Any(), testUID, "e1", gomock.Any()).Return(nil)

	tags := []string{"c"}
	got, err := f.session.UpdateEntry(testContext(), "e1", models.EntryPatch{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got.Tags)
}

func TestUpdateEntry_UnknownID(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	title := "x"
	_, err := f.session.UpdateEntry(testContext(), "missing", models.EntryPatch{Title: &title})

	assert.ErrorIs(t, err, vault.ErrNotFound)
}

func TestUpdateEntry_StoreFailureKeepsOldValue(t *testing.T) {
	f := newFixture(t)
	f.open(t, f.seal(t, "e1", models.EntryFields{Title: "old"}))

	f.store.EXPECT().Update(gomock.Any(), testUID, "e1", gomock.Any()).Return(errors.New("503"))

	title := "new"
	_, err := f.session.UpdateEntry(testContext(), "e1", models.EntryPatch{Title: &title})
	assert.ErrorIs(t, err, vault.ErrStoreUnavailable)

	e, err := f.session.Entry("e1")
	require.NoError(t, err)
	assert.Equal(t, "old", e.Title)
}

func TestDeleteEntry(t *testing.T) {
	f := newFixture(t)
	f.open(t,
		f.seal(t, "e1", models.EntryFields{Title: "one"}),
		f.seal(t, "e2", models.EntryFields{Title: "two"}),
	)

	f.store.EXPECT().Delete(gomock.Any(), testUID, "e1").Return(nil)

	require.NoError(t, f.session.DeleteEntry(testContext(), "e1"))

	entries, err := f.session.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e2", entries[0].ID)
}

func TestDeleteEntry_StoreFailureKeepsEntry(t *testing.T) {
	f := newFixture(t)
	f.open(t, f.seal(t, "e1", models.EntryFields{Title: "one"}))

	f.store.EXPECT().Delete(gomock.Any(), testUID, "e1").Return(errors.New("network down"))

	err := f.session.DeleteEntry(testContext(), "e1")
	assert.ErrorIs(t, err, vault.ErrStoreUnavailable)

	_, err = f.session.Entry("e1")
	assert.NoError(t, err)
}

func TestDeleteEntry_NotFoundInStore(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	f.store.EXPECT().Delete(gomock.Any(), testUID, "gone").Return(errors.Join(vault.ErrNotFound, errors.New("404")))

	err := f.session.DeleteEntry(testContext(), "gone")
	assert.ErrorIs(t, err, vault.ErrNotFound)
	assert.NotErrorIs(t, err, vault.ErrStoreUnavailable)
}

func TestSession_ReturnsCopies(t *testing.T) {
	f := newFixture(t)
	f.open(t, f.seal(t, "e1", models.EntryFields{Title: "one"}, "tag"))

	entries, err := f.session.Entries()
	require.NoError(t, err)
	entries[0].Title = "mutated"
	entries[0].Tags[0] = "mutated"

	e, err := f.session.Entry("e1")
	require.NoError(t, err)
	assert.Equal(t, "one", e.Title)
	assert.Equal(t, []string{"tag"}, e.Tags)
}

func TestSession_SearchAndSite(t *testing.T) {
	f := newFixture(t)
	f.open(t,
		f.seal(t, "e1", models.EntryFields{Title: "GitHub", Username: "octo", URL: "https://www.github.com/login"}, "dev"),
		f.seal(t, "e2", models.EntryFields{Title: "Bank", Username: "me", URL: "https://bank.example"}, "finance"),
	)

	found, err := f.session.Search("GITHUB")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "e1", found[0].ID)

	found, err = f.session.Search("finance")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "e2", found[0].ID)

	found, err = f.session.Search("")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = f.session.EntriesForSite("https://gist.github.com/x")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "e1", found[0].ID)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "locked", vault.StateLocked.String())
	assert.Equal(t, "unlocking", vault.StateUnlocking.String())
	assert.Equal(t, "unlocked", vault.StateUnlocked.String())
	assert.Equal(t, "State(7)", vault.State(7).String())
}
