// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned when neither transport is configured.
	errNoServersAreCreated = errors.New("no servers are created")

	// errListen wraps failures to bind a configured address.
	errListen = errors.New("failed to listen")
)
