// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCryptoConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.services.VaultService.GetCryptoConfig(r.Context(), chi.URLParam(r, paramUID))
	if err != nil {
		writeError(w, r, "Handler.getCryptoConfig", err)
		return
	}

	utils.WriteJSON(w, cfg, http.StatusOK)
}

// setCryptoConfig stores the configuration once; a second PUT is a conflict.
func (h *Handler) setCryptoConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.CryptoConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, r, "Handler.setCryptoConfig", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.VaultService.SetCryptoConfig(r.Context(), chi.URLParam(r, paramUID), cfg); err != nil {
		writeError(w, r, "Handler.setCryptoConfig", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
