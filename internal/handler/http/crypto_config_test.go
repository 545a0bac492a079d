// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/store"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCryptoConfig = models.CryptoConfig{
	Salt:       "AAAAAAAAAAAAAAAAAAAAAA==",
	Iterations: 100_000,
	Hash:       models.DefaultKDFHash,
	Verifier:   &models.EncryptedResult{Data: "ZGF0YQ==", IV: "AAAAAAAAAAAAAAAAAAAAAA=="},
}

func TestGetCryptoConfig_OK(t *testing.T) {
	f := newFixture(t, "")
	f.expectToken()
	f.vault.EXPECT().GetCryptoConfig(gomock.Any(), testUID).Return(testCryptoConfig, nil)

	rec := f.do(newAuthedRequest(t, http.MethodGet, "/api/users/u1/config/crypto", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.CryptoConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testCryptoConfig, got)
}

func TestGetCryptoConfig_NotFound(t *testing.T) {
	f := newFixture(t, "")
	f.expectToken()
	f.vault.EXPECT().GetCryptoConfig(gomock.Any(), testUID).Return(models.CryptoConfig{}, store.ErrCryptoConfigNotFound)

	rec := f.do(newAuthedRequest(t, http.MethodGet, "/api/users/u1/config/crypto", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgCryptoConfigNotFound, bodyText(rec))
}

func TestSetCryptoConfig_NoContent(t *testing.T) {
	f := newFixture(t, "")
	f.expectToken()
	f.vault.EXPECT().SetCryptoConfig(gomock.Any(), testUID, testCryptoConfig).Return(nil)

	rec := f.do(newAuthedRequest(t, http.MethodPut, "/api/users/u1/config/crypto", testCryptoConfig))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetCryptoConfig_AlreadySet(t *testing.T) {
	f := newFixture(t, "")
	f.expectToken()
	f.vault.EXPECT().SetCryptoConfig(gomock.Any(), testUID, gomock.Any()).Return(store.ErrCryptoConfigExists)

	rec := f.do(newAuthedRequest(t, http.MethodPut, "/api/users/u1/config/crypto", testCryptoConfig))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgCryptoConfigExists, bodyText(rec))
}

func TestSetCryptoConfig_OtherUserForbidden(t *testing.T) {
	f := newFixture(t, "")
	f.expectToken()

	rec := f.do(newAuthedRequest(t, http.MethodPut, "/api/users/someone-else/config/crypto", testCryptoConfig))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
