package logbook

import (
	"strings"
	"time"
)

// MaskDate applies the progressive DD/MM/YYYY input mask: non-digits
// are dropped, slashes appear as soon as a segment fills, input beyond
// eight digits is cut off.
func MaskDate(input string) string {
	var digits []byte
	for i := 0; i < len(input) && len(digits) < 8; i++ {
		if input[i] >= '0' && input[i] <= '9' {
			digits = append(digits, input[i])
		}
	}

	var b strings.Builder
	for i, d := range digits {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteByte(d)
	}
	return b.String()
}

// ValidDate reports whether a fully masked value is a real calendar
// date.
func ValidDate(masked string) bool {
	if len(masked) != 10 {
		return false
	}
	_, err := time.Parse("02/01/2006", masked)
	return err == nil
}
