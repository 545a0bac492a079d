// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import "unicode/utf8"

// MaxScore is the upper bound of Score.
const MaxScore = 100

// Strength is a coarse label for a score.
type Strength string

const (
	StrengthWeak   Strength = "Weak"
	StrengthMedium Strength = "Medium"
	StrengthStrong Strength = "Strong"
)

// Score rates password from 0 to 100:
//
//	min(2*length, 30)
//	+15 if it has a lowercase ASCII letter
//	+15 if it has an uppercase ASCII letter
//	+15 if it has a digit
//	+25 if it has anything outside [A-Za-z0-9]
//
// Length is counted in runes. Adding characters never lowers the score.
func Score(password string) int {
	score := min(utf8.RuneCountInString(password)*2, 30)

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	if lower {
		score += 15
	}
	if upper {
		score += 15
	}
	if digit {
		score += 15
	}
	if other {
		score += 25
	}

	return min(score, MaxScore)
}

// Label maps a score to the band shown next to the strength meter.
func Label(score int) Strength {
	switch {
	case score < 40:
		return StrengthWeak
	case score < 70:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
