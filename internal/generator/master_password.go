// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Master password policy applied at sign-up.
const (
	MinMasterPasswordLength  = 12
	MinMasterPasswordClasses = 3
)

// ValidateMasterPassword checks that password has at least
// MinMasterPasswordLength characters drawn from at least
// MinMasterPasswordClasses of ASCII upper, lower, digit and Symbols.
// Any other rune counts toward length but not toward a class.
func ValidateMasterPassword(password string) error {
	if n := utf8.RuneCountInString(password); n < MinMasterPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters, got %d",
			ErrWeakMasterPassword, MinMasterPasswordLength, n)
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(Symbols, r):
			symbol = true
		}
	}

	classes := 0
	for _, ok := range []bool{upper, lower, digit, symbol} {
		if ok {
			classes++
		}
	}
	if classes < MinMasterPasswordClasses {
		return fmt.Errorf("%w: use at least %d of uppercase, lowercase, digits and symbols",
			ErrWeakMasterPassword, MinMasterPasswordClasses)
	}
	return nil
}
