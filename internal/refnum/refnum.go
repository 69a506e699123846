// Package refnum validates Finnish payment reference numbers
// (viitenumero) with the 7-3-1 weighted mod-10 check digit.
package refnum

import "strings"

// weights cycle from the rightmost payload digit outward.
var weights = [3]int{7, 3, 1}

// Valid reports whether s is a well-formed reference number with a
// correct check digit. Spaces and hyphens are ignored.
func Valid(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")

	if len(s) < 4 || len(s) > 20 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	payload := s[:len(s)-1]
	check := int(s[len(s)-1] - '0')
	return CheckDigit(payload) == check
}

// CheckDigit computes the check digit for a payload of digits. The
// rightmost payload digit gets weight 7, the next 3, then 1, repeating.
// The caller must pass only ASCII digits.
func CheckDigit(payload string) int {
	sum := 0
	for i := 0; i < len(payload); i++ {
		d := int(payload[len(payload)-1-i] - '0')
		sum += d * weights[i%3]
	}
	return (10 - sum%10) % 10
}
