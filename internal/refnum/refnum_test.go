package refnum

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"1232", true},         // 123 -> 3*7+2*3+1*1=28 -> check 2
		{"13", false},          // too short
		{"1 232", true},        // spaces ignored
		{"12-32", true},        // hyphens ignored
		{"1231", false},        // wrong check digit
		{"12345672", true},     // 1234567 -> weighted sum 118 -> check 2
		{"12345675", false},    // wrong check digit
		{"abcd", false},        // not digits
		{"", false},            // empty
		{"123456789012345678901", false}, // too long
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.ref), "Valid(%q)", tt.ref)
	}
}

func TestCheckDigit(t *testing.T) {
	// 1234: weights right-to-left 7,3,1,7 -> 4*7+3*3+2*1+1*7 = 46 -> (10-6)%10 = 4
	assert.Equal(t, 4, CheckDigit("1234"))
	// 123: 3*7+2*3+1*1 = 28 -> (10-8)%10 = 2
	assert.Equal(t, 2, CheckDigit("123"))
	// all-zero payload sums to 0 -> check digit 0
	assert.Equal(t, 0, CheckDigit("000"))
}

func TestGeneratedReferencesValidate(t *testing.T) {
	for payload := 100; payload < 200; payload++ {
		p := strconv.Itoa(payload)
		ref := p + strconv.Itoa(CheckDigit(p))
		assert.True(t, Valid(ref), "generated ref %q", ref)
	}
}

func TestMutatedCheckDigitFails(t *testing.T) {
	p := "96105430007"
	good := CheckDigit(p)
	for d := 0; d < 10; d++ {
		ref := p + strconv.Itoa(d)
		assert.Equal(t, d == good, Valid(ref), "ref %q", ref)
	}
}
