// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extension

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/secure-vault/models"
)

// MessageType names a message exchanged with the browser extension.
type MessageType string

// Inbound messages. Only the request types get a response.
const (
	TypeSaveCredentials       MessageType = "SAVE_CREDENTIALS"
	TypeSettingsUpdated       MessageType = "SETTINGS_UPDATED"
	TypeUserActivity          MessageType = "USER_ACTIVITY"
	TypeCheckAuthStatus       MessageType = "CHECK_AUTH_STATUS"
	TypeGetCredentialsForSite MessageType = "GET_CREDENTIALS_FOR_SITE"
	TypeGeneratePassword      MessageType = "GENERATE_PASSWORD"
	TypeUnlock                MessageType = "UNLOCK"
	TypeSavePending           MessageType = "SAVE_PENDING_CREDENTIALS"
	TypeLock                  MessageType = "LOCK"
)

// Outbound messages, broadcast to every listener.
const (
	TypeFillCredentials         MessageType = "FILL_CREDENTIALS"
	TypeVaultLocked             MessageType = "VAULT_LOCKED"
	TypeInsertGeneratedPassword MessageType = "INSERT_GENERATED_PASSWORD"
)

// IsRequest reports whether messages of type t expect a response.
func (t MessageType) IsRequest() bool {
	switch t {
	case TypeCheckAuthStatus, TypeGetCredentialsForSite, TypeUnlock, TypeSavePending:
		return true
	default:
		return false
	}
}

// Message is the envelope of every message. Which of the optional fields is
// set depends on Type.
type Message struct {
	Type     MessageType      `json:"type"`
	Data     json.RawMessage  `json:"data,omitempty"`
	Settings *models.Settings `json:"settings,omitempty"`
	URL      string           `json:"url,omitempty"`
	Password string           `json:"password,omitempty"`
}

// NewMessage builds a message of type t with data encoded as its body.
func NewMessage(t MessageType, data any) (Message, error) {
	if data == nil {
		return Message{Type: t}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Data: raw}, nil
}

// DecodeData unmarshals the message body into v.
func (m Message) DecodeData(v any) error {
	if len(m.Data) == 0 {
		return fmt.Errorf("%w: %s has no data", ErrMalformedMessage, m.Type)
	}
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedMessage, m.Type, err)
	}
	return nil
}

// SavedCredentials is the body of SAVE_CREDENTIALS, captured from a login
// form by the content script.
type SavedCredentials struct {
	Hostname string `json:"hostname"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
}

// FillCredentials is the body of FILL_CREDENTIALS.
type FillCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UnlockRequest is the body of UNLOCK.
type UnlockRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	MasterPassword string `json:"masterPassword"`
}

// AuthStatus answers CHECK_AUTH_STATUS.
type AuthStatus struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserID          string `json:"userId,omitempty"`
}

// SiteCredentials answers GET_CREDENTIALS_FOR_SITE.
type SiteCredentials struct {
	Success   bool                    `json:"success"`
	Passwords []models.DecryptedEntry `json:"passwords"`
	Error     string                  `json:"error,omitempty"`
}

// Result answers UNLOCK and SAVE_PENDING_CREDENTIALS.
type Result struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId,omitempty"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}
