// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyCiphertext = errors.New("encrypted data is required")
	ErrInvalidIV       = errors.New("invalid iv")
	ErrInvalidTag      = errors.New("tags must be non-empty strings")
	ErrInvalidSalt     = errors.New("invalid salt")
	ErrInvalidKDFHash  = errors.New("unsupported kdf hash")
	ErrTooFewRounds    = errors.New("kdf iterations below minimum")
	ErrInvalidVerifier = errors.New("invalid verifier")
)
