package csvfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEncodingBOM(t *testing.T) {
	// BOM wins regardless of what follows, even non-UTF-8 bytes.
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}))
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte{0xEF, 0xBB, 0xBF, 0xE4, 0xF6}))
}

func TestDetectEncodingUTF8(t *testing.T) {
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("Päivämäärä;Summa")))
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("100,00 €")))
}

func TestDetectEncodingLatin1(t *testing.T) {
	// "Päivä" in ISO-8859-1: ä = 0xE4.
	data := []byte{'P', 0xE4, 'i', 'v', 0xE4}
	assert.Equal(t, EncodingISO8859_1, DetectEncoding(data))
}

func TestDetectEncodingWindows1252(t *testing.T) {
	// 0x80 is the euro sign in Windows-1252 but unmapped in ISO-8859-1.
	data := []byte{'1', '0', '0', ' ', 0x80}
	assert.Equal(t, EncodingWindows1252, DetectEncoding(data))
}

func TestDetectEncodingASCIIDefaultsToUTF8(t *testing.T) {
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("Date,Amount\n1/2/2024,50.00")))
}

func TestDecodeStripsBOM(t *testing.T) {
	text, enc := Decode([]byte{0xEF, 0xBB, 0xBF, 'a', ';', 'b'})
	assert.Equal(t, EncodingUTF8, enc)
	assert.Equal(t, "a;b", text)
}

func TestDecodeLatin1(t *testing.T) {
	text, enc := Decode([]byte{'P', 0xE4, 'i', 'v', 0xE4})
	assert.Equal(t, EncodingISO8859_1, enc)
	assert.Equal(t, "Päivä", text)
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		line string
		want rune
	}{
		{"a;b;c", ';'},
		{"a,b,c", ','},
		{"a\tb\tc", '\t'},
		{"a;b,c", ';'},            // tie between ; and , resolves to ;
		{"\"a;b\",c", ','},        // quoted semicolon not counted
		{"\"a,b\";c", ';'},
		{"plain text", ','},       // no delimiters at all falls back to comma
		{"a\tb;c", ','},           // ; and tab tied: neither wins, comma fallback
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(DetectDelimiter(tt.line)), "line %q", tt.line)
	}
}
