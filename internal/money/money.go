// Package money parses monetary amounts from bank export cells, which
// mix Finnish ("1.234,56") and international ("1,234.56") formatting.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Finnish: dot as thousands separator, comma as decimal separator.
	finnishRe = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*(,\d{1,2})?$`)
	// International: comma as thousands separator, dot as decimal separator.
	internationalRe = regexp.MustCompile(`^-?\d{1,3}(,\d{3})*(\.\d{1,2})?$`)
)

// Parse interprets s as a monetary amount. The euro sign, the text
// "EUR", ordinary spaces and non-breaking spaces are ignored. The
// Finnish shape is tried before the international one, so an ambiguous
// value like "1.234" reads as one thousand two hundred thirty-four.
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = replaceEUR(s)

	if s == "" {
		return decimal.Zero, false
	}

	if finnishRe.MatchString(s) {
		t := strings.ReplaceAll(s, ".", "")
		t = strings.ReplaceAll(t, ",", ".")
		d, err := decimal.NewFromString(t)
		if err == nil {
			return d, true
		}
	}

	if internationalRe.MatchString(s) {
		t := strings.ReplaceAll(s, ",", "")
		d, err := decimal.NewFromString(t)
		if err == nil {
			return d, true
		}
	}

	// Last resort: treat a lone comma as a decimal point.
	t := strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Matches reports whether s fits one of the two strict money shapes.
// Unlike Parse it does not fall back to a naive decimal read, so plain
// integers with four or more digits are not considered money. Column
// classification uses this; row parsing uses the more lenient Parse.
func Matches(s string) bool {
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = replaceEUR(s)
	if s == "" {
		return false
	}
	return finnishRe.MatchString(s) || internationalRe.MatchString(s)
}

func replaceEUR(s string) string {
	for {
		i := strings.Index(strings.ToUpper(s), "EUR")
		if i < 0 {
			return s
		}
		s = s[:i] + s[i+3:]
	}
}
