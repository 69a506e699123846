package csvfile

import "strings"

// Table is a fully parsed export file: every row split into fields,
// plus the delimiter and encoding the parse was made with. The first
// row holds the column headers.
type Table struct {
	Rows      [][]string
	Delimiter rune
	Encoding  Encoding
}

// Headers returns the header row, or nil for an empty table.
func (t Table) Headers() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns all rows after the header row.
func (t Table) DataRows() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// ColumnCount returns the number of header fields.
func (t Table) ColumnCount() int { return len(t.Headers()) }

// RowCount returns the total number of rows including the header.
func (t Table) RowCount() int { return len(t.Rows) }

// Parse sniffs encoding and delimiter from raw file bytes and splits
// the content into rows of fields. Blank lines are dropped. The whole
// file is held in memory; bank exports are small enough for that.
func Parse(data []byte) Table {
	text, enc := Decode(data)

	lines := strings.Split(text, "\n")
	delimiter := ','
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			delimiter = DetectDelimiter(line)
			break
		}
	}

	var rows [][]string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, SplitLine(line, delimiter))
	}

	return Table{Rows: rows, Delimiter: delimiter, Encoding: enc}
}

// SplitLine splits one line into fields on delim, honoring double
// quotes. A doubled quote inside a quoted span emits a literal quote.
// Carriage returns are dropped so CRLF input parses cleanly. A line
// with N unquoted delimiters always yields N+1 fields. Multi-line
// quoted fields are not supported; lines are pre-split upstream.
func SplitLine(line string, delim rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		case r == '\r':
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields
}
