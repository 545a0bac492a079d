// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// server handlers and by the client adapter that reads their responses.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client matches on them to recover typed errors, so
// the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user addresses a
	// path that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgEntryNotFound is returned when an update or delete targets an
	// entry that does not exist for the current user.
	MsgEntryNotFound = "entry not found"

	// MsgInvalidEntryRecord is returned when an entry payload is not a
	// well-formed base64 ciphertext and IV pair.
	MsgInvalidEntryRecord = "invalid entry record"

	// MsgCryptoConfigNotFound is returned when the user has no crypto
	// configuration yet.
	MsgCryptoConfigNotFound = "user configuration not found"

	// MsgCryptoConfigExists is returned when a second crypto configuration
	// is written for the same user.
	MsgCryptoConfigExists = "crypto config already exists"

	// MsgInvalidCryptoConfig is returned when a crypto configuration has a
	// malformed salt, verifier or unsupported KDF parameters.
	MsgInvalidCryptoConfig = "invalid crypto config"

	// MsgIntegrityCheckFailed is returned when the body hash header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"
)
