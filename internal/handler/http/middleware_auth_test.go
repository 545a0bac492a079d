// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuth_RejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no token", header: "Bearer"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "too many parts", header: "Bearer a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			f.handler.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, bodyText(rec))
			assert.False(t, called)
		})
	}
}

func TestAuth_RejectsInvalidToken(t *testing.T) {
	f := newFixture(t, "")
	f.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	f.handler.auth(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_StoresUIDInContext(t *testing.T) {
	f := newFixture(t, "")
	f.expectToken()

	var uid string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok = utils.GetUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	f.handler.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, ok)
	assert.Equal(t, testUID, uid)
}

func TestSameUser(t *testing.T) {
	tests := []struct {
		name       string
		ctxUID     string
		pathUID    string
		wantStatus int
	}{
		{name: "matching uid", ctxUID: "u1", pathUID: "u1", wantStatus: http.StatusOK},
		{name: "different uid", ctxUID: "u1", pathUID: "u2", wantStatus: http.StatusForbidden},
		{name: "no uid in context", pathUID: "u1", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add(paramUID, tt.pathUID)
			ctx := context.WithValue(context.Background(), chi.RouteCtxKey, rctx)
			if tt.ctxUID != "" {
				ctx = context.WithValue(ctx, utils.UserIDCtxKey, tt.ctxUID)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
			rec := httptest.NewRecorder()
			h.sameUser(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
