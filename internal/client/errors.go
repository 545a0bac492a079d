// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNoSession is returned when an operation needs a vault session but no
// one has signed in yet.
var ErrNoSession = errors.New("not signed in")
