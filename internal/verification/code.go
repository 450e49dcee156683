// Package verification checks the shape of the one-time codes entered on the
// validate-email step.
package verification

import "github.com/nfrund/authflow/internal/domain"

// CodeLength is the exact number of digits in a verification code.
const CodeLength = 6

// Clamp truncates input to CodeLength characters. Extra input is dropped
// silently rather than rejected.
func Clamp(input string) string {
	runes := []rune(input)
	if len(runes) <= CodeLength {
		return input
	}
	return string(runes[:CodeLength])
}

// Validate reports domain.ErrInvalidCode unless code is exactly CodeLength
// ASCII digits. Only the shape is checked; the code is never compared with
// an issued value.
func Validate(code string) error {
	if len(code) != CodeLength {
		return domain.ErrInvalidCode
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return domain.ErrInvalidCode
		}
	}
	return nil
}
