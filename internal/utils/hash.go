// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds keyed HMAC-SHA256 hashers for ContentHash.
var hasherPool sync.Pool

// InitHasherPool keys the pool used by ContentHash. Both the client and the
// server call it once with the shared transport key.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// ContentHash returns the hex value of ContentHashHeader for body.
// InitHasherPool must have been called.
func ContentHash(body []byte) string {
	h := hasherPool.Get().(hash.Hash)
	defer hasherPool.Put(h)

	h.Reset()
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// Pepper returns the hex HMAC-SHA256 of secret under key. Unlike ContentHash
// it does not touch the pool.
func Pepper(secret, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}
