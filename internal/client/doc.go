// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the application side of the vault: it signs in through
// the account service and keeps the unlocked vault session that the CLI
// commands and the extension agent work with.
package client
