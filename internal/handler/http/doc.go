// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the vault server.
//
// The server only ever sees ciphertext: entries arrive as base64 envelopes
// and the per-user crypto configuration holds a salt and KDF parameters.
// Authentication, tracing, access logging, compression and body integrity
// checks are handled here before requests reach the service layer.
package http
