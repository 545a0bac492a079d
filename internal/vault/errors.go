// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrVaultLocked is returned by every entry operation while the session
	// is not unlocked. The store is not contacted.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrNotFound is returned when an entry id is unknown, either to the
	// session or to the store.
	ErrNotFound = errors.New("entry not found")

	// ErrStoreUnavailable wraps any store failure that is not ErrNotFound.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrWrongMasterPassword is returned by Unlock when the crypto config
	// carries a verifier and the derived key does not open it.
	ErrWrongMasterPassword = errors.New("wrong master password")

	// ErrUnreadableEntry marks a single entry that failed to decrypt or
	// decode during unlock. It is logged and the entry is skipped.
	ErrUnreadableEntry = errors.New("unreadable entry")

	// ErrUnlockInProgress is returned when Unlock is called while a previous
	// Unlock has not finished.
	ErrUnlockInProgress = errors.New("unlock already in progress")
)
