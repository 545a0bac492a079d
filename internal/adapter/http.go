// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/go-resty/resty/v2"
)

// Server routes used by the adapter.
const (
	pathRegister     = "/api/auth/register"
	pathLogin        = "/api/auth/login"
	pathLogout       = "/api/auth/logout"
	pathEntries      = "/api/users/{uid}/passwords"
	pathEntry        = "/api/users/{uid}/passwords/{id}"
	pathCryptoConfig = "/api/users/{uid}/config/crypto"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. When appCfg.HashKey is set, every request body is signed
// with it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, appCfg.HashKey)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateAccount implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) CreateAccount(ctx context.Context, email, password string) (string, error) {
	return h.authenticate(ctx, pathRegister, models.Credentials{Email: email, Password: password})
}

// SignIn implements [ServerAdapter] against POST /api/auth/login.
func (h *httpServerAdapter) SignIn(ctx context.Context, email, password string) (string, error) {
	return h.authenticate(ctx, pathLogin, models.Credentials{Email: email, Password: password})
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, creds models.Credentials) (string, error) {
	var result models.AuthResponse

	req, err := h.jsonRequest(ctx, creds)
	if err != nil {
		return "", err
	}

	resp, err := req.SetResult(&result).Post(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%w: parse bearer token: %w", ErrTransport, err)
	}
	if result.UID == "" {
		return "", fmt.Errorf("%w: empty uid in response", ErrTransport)
	}

	h.SetToken(token)
	logger.FromContext(ctx).Debug().Str("uid", result.UID).Str("path", path).Msg("signed in")
	return result.UID, nil
}

// SignOut implements [ServerAdapter]. The local token is dropped even when
// the server call fails.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	if h.Token() == "" {
		return nil
	}
	defer h.SetToken("")

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post(pathLogout)
	if err != nil {
		return fmt.Errorf("%w: logout: %w", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

// GetAll implements vault.Store via GET /api/users/{uid}/passwords.
func (h *httpServerAdapter) GetAll(ctx context.Context, uid string) ([]models.Entry, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.Entry
	resp, err := req.
		SetPathParam("uid", uid).
		SetResult(&entries).
		Get(pathEntries)
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

// Add implements vault.Store via POST /api/users/{uid}/passwords.
func (h *httpServerAdapter) Add(ctx context.Context, uid string, rec models.EntryRecord) (string, error) {
	req, err := h.authedJSONRequest(ctx, rec)
	if err != nil {
		return "", err
	}

	var created models.IDResponse
	resp, err := req.
		SetPathParam("uid", uid).
		SetResult(&created).
		Post(pathEntries)
	if err != nil {
		return "", fmt.Errorf("%w: add entry: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: empty id in response", ErrTransport)
	}

	return created.ID, nil
}

// Update implements vault.Store via PUT /api/users/{uid}/passwords/{id}.
// An unknown id yields an error wrapping vault.ErrNotFound.
func (h *httpServerAdapter) Update(ctx context.Context, uid, id string, rec models.EntryRecord) error {
	req, err := h.authedJSONRequest(ctx, rec)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{"uid": uid, "id": id}).
		Put(pathEntry)
	if err != nil {
		return fmt.Errorf("%w: update entry: %w", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

// Delete implements vault.Store via DELETE /api/users/{uid}/passwords/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, uid, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{"uid": uid, "id": id}).
		Delete(pathEntry)
	if err != nil {
		return fmt.Errorf("%w: delete entry: %w", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

// GetCryptoConfig implements vault.Store via GET /api/users/{uid}/config/crypto.
// A user without a config yields an error wrapping vault.ErrNotFound.
func (h *httpServerAdapter) GetCryptoConfig(ctx context.Context, uid string) (models.CryptoConfig, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.CryptoConfig{}, err
	}

	var cfg models.CryptoConfig
	resp, err := req.
		SetPathParam("uid", uid).
		SetResult(&cfg).
		Get(pathCryptoConfig)
	if err != nil {
		return models.CryptoConfig{}, fmt.Errorf("%w: get crypto config: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CryptoConfig{}, err
	}

	return cfg, nil
}

// SetCryptoConfig implements vault.Store via PUT /api/users/{uid}/config/crypto.
// The server answers 409 (ErrConflict) if the user already has one.
func (h *httpServerAdapter) SetCryptoConfig(ctx context.Context, uid string, cfg models.CryptoConfig) error {
	req, err := h.authedJSONRequest(ctx, cfg)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("uid", uid).
		Put(pathCryptoConfig)
	if err != nil {
		return fmt.Errorf("%w: set crypto config: %w", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

// jsonRequest marshals body once so the integrity hash covers exactly the
// bytes that go on the wire.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", ErrTransport, err)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func (h *httpServerAdapter) authedJSONRequest(ctx context.Context, body any) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}
	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return nil, err
	}
	return req.SetHeader("Authorization", "Bearer "+token), nil
}
