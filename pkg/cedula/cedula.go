// Package cedula validates Dominican national identity numbers (cédulas):
// 11 decimal digits where the last digit is a weighted check digit.
package cedula

import (
	"strings"
	"unicode"
)

var weights = [10]int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2}

// Validate reports whether s is a structurally valid cédula. Hyphens and
// whitespace are stripped before checking. Any malformed input returns false.
func Validate(s string) bool {
	cleaned := clean(s)
	if len(cleaned) != 11 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}

	sum := 0
	for i := 0; i < 10; i++ {
		product := int(cleaned[i]-'0') * weights[i]
		if product >= 10 {
			product = product/10 + product%10
		}
		sum += product
	}

	checkDigit := (10 - sum%10) % 10
	return checkDigit == int(cleaned[10]-'0')
}

func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
