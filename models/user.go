// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account known to the identity provider.
// The account password is unrelated to the master password and never takes
// part in key derivation.
type User struct {
	// UID is the opaque user identifier issued at account creation.
	UID string `json:"uid"`

	// Email is the unique sign-in name of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the peppered account password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time (server clock).
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the email/account-password pair sent to the identity
// provider on sign-up and sign-in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by the identity endpoints alongside the bearer
// token in the Authorization header.
type AuthResponse struct {
	UID string `json:"uid"`
}
