// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/utils"
)

// Handler serves the vault REST API on top of [service.Services].
type Handler struct {
	services *service.Services

	// hashKey enables X-Content-Hash verification of request bodies when set.
	hashKey string

	logger *logger.Logger
}

// NewHandler creates a Handler. An empty hashKey disables integrity checks.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Bool("integrity_check", hashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		logger:   logger,
	}
}
