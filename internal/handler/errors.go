// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportConfigured means the server config has neither
// SERVER_ADDRESS nor SERVER_GRPC_ADDRESS, so the vault API would be
// unreachable.
var errNoTransportConfigured = errors.New("vault server needs an HTTP or gRPC address")
