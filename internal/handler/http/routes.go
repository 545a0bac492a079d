// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// URL parameters shared by the routes and the handlers reading them.
const (
	paramUID     = "uid"
	paramEntryID = "entryID"
)

// Init builds the router with the full middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		withGZipRequest,
		middleware.Compress(5, "application/json", "text/plain"),
		h.withContentHash,
	)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Get("/version", h.getServerVersion)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)

			r.Route("/users/{"+paramUID+"}", func(r chi.Router) {
				r.Use(h.sameUser)

				r.Get("/passwords", h.listEntries)
				r.Post("/passwords", h.createEntry)
				r.Put("/passwords/{"+paramEntryID+"}", h.updateEntry)
				r.Delete("/passwords/{"+paramEntryID+"}", h.deleteEntry)

				r.Get("/config/crypto", h.getCryptoConfig)
				r.Put("/config/crypto", h.setCryptoConfig)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
