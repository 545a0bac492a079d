// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/store"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCredentials = models.Credentials{Email: "alice@example.com", Password: "account-secret"}

// ── register ────────────────────────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	f := newFixture(t, "")
	f.auth.EXPECT().RegisterUser(gomock.Any(), testCredentials).Return(models.User{UID: testUID, Email: testCredentials.Email}, nil)
	f.auth.EXPECT().CreateToken(gomock.Any(), testUID).Return(models.Token{SignedString: "signed"}, nil)

	rec := f.do(newJSONRequest(t, http.MethodPost, "/api/auth/register", testCredentials))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testUID, resp.UID)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "email taken",
			serviceErr: fmt.Errorf("create user: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgEmailAlreadyExists,
		},
		{
			name:       "invalid credentials",
			serviceErr: fmt.Errorf("%w: bad email", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "unexpected",
			serviceErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			f.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := f.do(newJSONRequest(t, http.MethodPost, "/api/auth/register", testCredentials))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyText(rec))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	f := newFixture(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := f.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, bodyText(rec))
}

func TestRegister_TokenFailure(t *testing.T) {
	f := newFixture(t, "")
	f.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UID: testUID}, nil)
	f.auth.EXPECT().CreateToken(gomock.Any(), testUID).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := f.do(newJSONRequest(t, http.MethodPost, "/api/auth/register", testCredentials))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgRegistrationFailed, bodyText(rec))
}

// ── login ───────────────────────────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	f := newFixture(t, "")
	f.auth.EXPECT().Login(gomock.Any(), testCredentials).Return(models.User{UID: testUID}, nil)
	f.auth.EXPECT().CreateToken(gomock.Any(), testUID).Return(models.Token{SignedString: "signed"}, nil)

	rec := f.do(newJSONRequest(t, http.MethodPost, "/api/auth/login", testCredentials))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
	assert.JSONEq(t, `{"uid":"u1"}`, rec.Body.String())
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t, "")
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)

	rec := f.do(newJSONRequest(t, http.MethodPost, "/api/auth/login", testCredentials))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgInvalidLoginPassword, bodyText(rec))
}

func TestLogin_TokenFailure(t *testing.T) {
	f := newFixture(t, "")
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UID: testUID}, nil)
	f.auth.EXPECT().CreateToken(gomock.Any(), testUID).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := f.do(newJSONRequest(t, http.MethodPost, "/api/auth/login", testCredentials))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgLoginFailed, bodyText(rec))
}

// ── logout ──────────────────────────────────────────────────────────────────

func TestLogout_NoContent(t *testing.T) {
	f := newFixture(t, "")
	f.expectToken()

	rec := f.do(newAuthedRequest(t, http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogout_RequiresToken(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(newJSONRequest(t, http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
