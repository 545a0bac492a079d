// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoUserID            = errors.New("no user ID was given")
	ErrValidationNoEntryID           = errors.New("no entry ID was given")
	ErrValidationEmptyCiphertext     = errors.New("encrypted data and iv are required")
	ErrValidationInvalidCryptoConfig = errors.New("invalid crypto config")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to a different user's data")
)

// Client-side errors returned by AccountService.
var (
	ErrRegisterOnServer     = errors.New("registration on server failed")
	ErrLoginOnServer        = errors.New("login on server failed")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrCryptoConfigNotFound = errors.New("user configuration not found")
	ErrNotSignedIn          = errors.New("not signed in")
)
