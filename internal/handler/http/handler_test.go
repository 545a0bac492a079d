// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUID   = "u1"
	testToken = "good-token"
)

type handlerFixture struct {
	handler *Handler
	router  http.Handler
	auth    *mock.MockAuthService
	vault   *mock.MockVaultService
	appInfo *mock.MockAppInfoService
}

func newFixture(t *testing.T, hashKey string) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		auth:    mock.NewMockAuthService(ctrl),
		vault:   mock.NewMockVaultService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	f.handler = NewHandler(&service.Services{
		AuthService:    f.auth,
		VaultService:   f.vault,
		AppInfoService: f.appInfo,
	}, hashKey, logger.Nop())
	f.router = f.handler.Init()

	return f
}

// expectToken makes testToken resolve to testUID.
func (f *handlerFixture) expectToken() {
	f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UID: testUID}, nil)
}

func (f *handlerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newAuthedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	req := newJSONRequest(t, method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func bodyText(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}

// ── NewHandler ──────────────────────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, "", logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Empty(t, h.hashKey)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
