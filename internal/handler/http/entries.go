// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := chi.URLParam(r, paramUID)

	entries, err := h.services.VaultService.ListEntries(ctx, uid)
	if err != nil {
		writeError(w, r, "Handler.listEntries", err)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	logger.FromRequest(r).Debug().Str("uid", uid).Int("count", len(entries)).Msg("entries listed")
	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := chi.URLParam(r, paramUID)

	var record models.EntryRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, r, "Handler.createEntry", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	entry, err := h.services.VaultService.CreateEntry(ctx, uid, record)
	if err != nil {
		writeError(w, r, "Handler.createEntry", err)
		return
	}

	logger.FromRequest(r).Debug().Str("uid", uid).Str("id", entry.ID).Msg("entry created")
	utils.WriteJSON(w, models.IDResponse{ID: entry.ID}, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := chi.URLParam(r, paramUID)
	id := chi.URLParam(r, paramEntryID)

	var record models.EntryRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, r, "Handler.updateEntry", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.VaultService.UpdateEntry(ctx, uid, id, record); err != nil {
		writeError(w, r, "Handler.updateEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := chi.URLParam(r, paramUID)
	id := chi.URLParam(r, paramEntryID)

	if err := h.services.VaultService.DeleteEntry(ctx, uid, id); err != nil {
		writeError(w, r, "Handler.deleteEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
