// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import "errors"

var (
	// ErrInvalidOptions is returned by Generate when no character class is
	// selected or the requested length is not positive.
	ErrInvalidOptions = errors.New("invalid generator options")

	// ErrWeakMasterPassword is returned when a master password does not meet
	// the sign-up policy.
	ErrWeakMasterPassword = errors.New("master password is too weak")
)
