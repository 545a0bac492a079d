// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL with timeout applied to
// every request. When hashKey is set, each request with a []byte body gets
// a ContentHashHeader computed with [Hash]; the global hasher pool is
// initialised with hashKey.
//
// Each call returns an independent client with its own connection pool.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second, "")
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration, hashKey string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if hashKey != "" {
		InitHasherPool(hashKey)
		client.OnBeforeRequest(signBody)
	}

	return &HTTPClient{Client: client}
}

func signBody(_ *resty.Client, r *resty.Request) error {
	body, ok := r.Body.([]byte)
	if !ok || len(body) == 0 {
		return nil
	}
	r.SetHeader(ContentHashHeader, ContentHash(body))
	return nil
}
