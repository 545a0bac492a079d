// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extension

import "errors"

var (
	// ErrUnknownMessage is returned for a message type the background does
	// not handle.
	ErrUnknownMessage = errors.New("unknown message type")

	// ErrMalformedMessage is returned when a message body does not match its
	// type.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrMessageTooLarge is returned by the native framing when a frame
	// exceeds the size limit.
	ErrMessageTooLarge = errors.New("native message too large")

	// ErrHandoffVersion is returned when a hand-off record was written by an
	// incompatible version.
	ErrHandoffVersion = errors.New("unsupported hand-off version")

	// ErrBackgroundStopped is returned by Send and Post once Run has exited.
	ErrBackgroundStopped = errors.New("background stopped")

	// ErrNoVault is returned for requests that need the app side when none
	// is attached.
	ErrNoVault = errors.New("no vault attached")
)
