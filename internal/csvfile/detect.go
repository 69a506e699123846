// Package csvfile turns raw bank export bytes into parsed rows. Bank
// exports arrive in a handful of encodings and delimiters with no
// declaration, so both are sniffed from the content before parsing.
package csvfile

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies the character encoding of a source file.
type Encoding string

const (
	EncodingUTF8        Encoding = "UTF-8"
	EncodingISO8859_1   Encoding = "ISO-8859-1"
	EncodingWindows1252 Encoding = "windows-1252"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// nordicChars are the characters that distinguish Finnish text from
// ASCII. An ASCII-only file is reported as UTF-8, which is harmless.
const nordicChars = "äöåÄÖÅ"

// DetectEncoding guesses the encoding of raw file bytes. This targets
// Finnish bank exports specifically: it looks for Nordic letters and
// the euro sign rather than doing general charset detection.
func DetectEncoding(data []byte) Encoding {
	if bytes.HasPrefix(data, utf8BOM) {
		return EncodingUTF8
	}

	if utf8.Valid(data) && strings.ContainsAny(string(data), nordicChars+"€") {
		return EncodingUTF8
	}

	if text, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		if strings.ContainsAny(string(text), nordicChars) {
			return EncodingISO8859_1
		}
	}

	if text, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		if strings.ContainsAny(string(text), nordicChars+"€") {
			return EncodingWindows1252
		}
	}

	return EncodingUTF8
}

// Decode converts raw file bytes to a string using the detected
// encoding, with any UTF-8 BOM stripped.
func Decode(data []byte) (string, Encoding) {
	enc := DetectEncoding(data)
	data = bytes.TrimPrefix(data, utf8BOM)

	switch enc {
	case EncodingISO8859_1:
		if text, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
			return string(text), enc
		}
	case EncodingWindows1252:
		if text, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
			return string(text), enc
		}
	}
	return string(data), enc
}

// DetectDelimiter picks the field delimiter by counting candidate
// characters outside quoted spans on one line. Semicolon beats tab
// beats comma on ties, matching what Finnish exports use most.
func DetectDelimiter(line string) rune {
	var commas, semicolons, tabs int
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case inQuotes:
		case r == ',':
			commas++
		case r == ';':
			semicolons++
		case r == '\t':
			tabs++
		}
	}

	switch {
	case semicolons >= commas && semicolons > tabs:
		return ';'
	case tabs > commas && tabs > semicolons:
		return '\t'
	default:
		return ','
	}
}
