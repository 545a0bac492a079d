// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the payloads the server accepts before they
// reach a repository: entry records, crypto configs, credentials and the
// user and entry ids taken from the request path.
package validators

import "context"

// Validator validates a request value. fields narrows the check to the
// named parts of v, for example "uid" or "entryID"; with no fields every
// rule applies.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
