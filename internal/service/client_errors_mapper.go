// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/vault"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return fmt.Errorf("%w: %w", ErrWrongPassword, err)
		case app.MsgTokenIsExpiredOrInvalid:
			return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
		}

	case errors.Is(err, adapter.ErrNotSignedIn):
		return fmt.Errorf("%w: %w", ErrNotSignedIn, err)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrUnauthorizedAccessToDifferentUserData, err)

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		}

	case errors.Is(err, vault.ErrNotFound):
		if msg == app.MsgCryptoConfigNotFound {
			return fmt.Errorf("%w: %w", ErrCryptoConfigNotFound, err)
		}
	}

	return err
}

// extractBody returns the response body that mapHTTPError appended after the
// last ": ".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
