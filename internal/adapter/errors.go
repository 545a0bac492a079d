// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError. The
// response body is appended to the message so callers can tell apart
// different failures behind the same status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrNotSignedIn is returned by authenticated calls made before a
	// successful CreateAccount or SignIn.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrTransport wraps failures below HTTP: refused connections, timeouts,
	// undecodable responses.
	ErrTransport = errors.New("transport failure")
)
