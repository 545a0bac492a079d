// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, "Handler.register", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, "Handler.register", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user.UID)
	if err != nil {
		log.Err(err).Str("func", "Handler.register").Str("uid", user.UID).Msg("creation of token failed")
		http.Error(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		return
	}

	log.Info().Str("uid", user.UID).Msg("user registered")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{UID: user.UID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, "Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user.UID)
	if err != nil {
		log.Err(err).Str("func", "Handler.login").Str("uid", user.UID).Msg("creation of token failed")
		http.Error(w, app.MsgLoginFailed, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("uid", user.UID).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{UID: user.UID}, http.StatusOK)
}

// logout acknowledges a sign-out. Tokens are stateless, so the server only
// records the event; the client drops its bearer.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	uid, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Str("uid", uid).Msg("user signed out")
	w.WriteHeader(http.StatusNoContent)
}
