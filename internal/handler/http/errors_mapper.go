// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/store"
)

// errorResponse pairs a sentinel with the status code and the body the
// client adapter matches on.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching sentinel wins.
var errorStatusMap = []errorResponse{
	{service.ErrValidationEmptyCiphertext, http.StatusBadRequest, app.MsgInvalidEntryRecord},
	{service.ErrValidationInvalidCryptoConfig, http.StatusBadRequest, app.MsgInvalidCryptoConfig},
	{service.ErrValidationNoUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},
	{service.ErrValidationNoEntryID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrCryptoConfigExists, http.StatusConflict, app.MsgCryptoConfigExists},

	{store.ErrEntryNotFound, http.StatusNotFound, app.MsgEntryNotFound},
	{store.ErrCryptoConfigNotFound, http.StatusNotFound, app.MsgCryptoConfigNotFound},
}

func statusFromError(err error) (int, string) {
	for _, resp := range errorStatusMap {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request-scoped logger and writes the mapped
// status and message as a plain text body.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(message)

	http.Error(w, message, status)
}
