// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the middleware before a request reaches the
// service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingContentHash is returned when integrity checking is enabled
	// and a request with a body carries no X-Content-Hash header.
	ErrMissingContentHash = errors.New("missing content hash")

	// ErrContentHashMismatch is returned when the X-Content-Hash header does
	// not match the HMAC of the received body.
	ErrContentHashMismatch = errors.New("content hash mismatch")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid json")
)
