// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's view of the server.
//
// [ServerAdapter] is at once the remote document store (vault.Store) and the
// identity provider. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/secure-vault/internal/vault"
)

// ServerAdapter defines transport-agnostic communication with the server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	vault.Store

	// CreateAccount registers email/password and keeps the returned bearer
	// token for later calls. It returns the new uid.
	CreateAccount(ctx context.Context, email, password string) (string, error)

	// SignIn authenticates email/password and keeps the returned bearer
	// token. It returns the account uid.
	SignIn(ctx context.Context, email, password string) (string, error)

	// SignOut tells the server and drops the token. Calling it while signed
	// out is a no-op.
	SignOut(ctx context.Context) error

	// SetToken replaces the bearer token, e.g. one restored from disk.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string
}
