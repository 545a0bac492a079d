// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords and rates password strength.
package generator

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/secure-vault/internal/crypto"
)

// Character classes in the order they are concatenated into the charset.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// DefaultLength is used by callers that do not let the user choose.
const DefaultLength = 16

// Options selects the length and character classes of a generated password.
type Options struct {
	Length           int  `json:"length"`
	IncludeUppercase bool `json:"includeUppercase"`
	IncludeLowercase bool `json:"includeLowercase"`
	IncludeNumbers   bool `json:"includeNumbers"`
	IncludeSymbols   bool `json:"includeSymbols"`
}

// DefaultOptions returns DefaultLength with every class enabled.
func DefaultOptions() Options {
	return Options{
		Length:           DefaultLength,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

// Charset returns the characters Options allows, classes in fixed order.
func (o Options) Charset() string {
	var b strings.Builder
	if o.IncludeUppercase {
		b.WriteString(Uppercase)
	}
	if o.IncludeLowercase {
		b.WriteString(Lowercase)
	}
	if o.IncludeNumbers {
		b.WriteString(Digits)
	}
	if o.IncludeSymbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Generator draws passwords from a [crypto.RandomSource].
type Generator struct {
	random crypto.RandomSource
}

// New returns a Generator reading from random.
func New(random crypto.RandomSource) *Generator {
	return &Generator{random: random}
}

// Generate returns a password of opts.Length characters. Each character is
// charset[v % len(charset)] for a fresh uniform uint32 v. The modulo bias this
// introduces is below 2^-24 for every supported charset and is accepted.
//
// It fails with ErrInvalidOptions when the charset is empty or the length is
// not positive. A random source failure is returned as is.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length <= 0 {
		return "", fmt.Errorf("%w: length must be positive, got %d", ErrInvalidOptions, opts.Length)
	}
	charset := opts.Charset()
	if charset == "" {
		return "", fmt.Errorf("%w: no character class selected", ErrInvalidOptions)
	}

	values, err := g.random.Uint32s(opts.Length)
	if err != nil {
		return "", err
	}

	n := uint32(len(charset))
	out := make([]byte, opts.Length)
	for i, v := range values {
		out[i] = charset[v%n]
	}
	return string(out), nil
}
