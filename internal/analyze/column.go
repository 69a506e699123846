package analyze

import (
	"strings"

	"github.com/tilikirja-dev/tilikirja/internal/csvfile"
	"github.com/tilikirja-dev/tilikirja/internal/model"
)

// sampleLimit caps how many non-blank values feed type inference.
const sampleLimit = 10

// Column is the analysis result for one CSV column. Everything except
// Mapping is derived from the file; Mapping starts as a guess and is
// replaced via WithMapping when the user or a preset decides otherwise.
type Column struct {
	Index   int
	Header  string
	Type    model.ColumnType
	Samples []string
	Mapping model.Mapping
}

// WithMapping returns a copy of c with the mapping replaced. The
// analysis fields are never mutated in place.
func WithMapping(c Column, m model.Mapping) Column {
	c.Mapping = m
	return c
}

// Columns analyzes every column of a parsed table: samples the data
// rows, infers each column's type and proposes a mapping.
func Columns(t csvfile.Table) []Column {
	headers := t.Headers()
	cols := make([]Column, len(headers))
	for i, header := range headers {
		samples := sampleColumn(t, i)
		typ := DetectType(samples)
		cols[i] = Column{
			Index:   i,
			Header:  strings.TrimSpace(header),
			Type:    typ,
			Samples: samples,
			Mapping: GuessMapping(header, typ),
		}
	}
	return cols
}

func sampleColumn(t csvfile.Table, index int) []string {
	var samples []string
	for _, row := range t.DataRows() {
		if index >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[index])
		if v == "" {
			continue
		}
		samples = append(samples, v)
		if len(samples) == sampleLimit {
			break
		}
	}
	return samples
}

// MappedIndex returns the index of the first column carrying the given
// mapping, or -1. CountMapped reports how many columns carry it.
func MappedIndex(cols []Column, m model.Mapping) int {
	for _, c := range cols {
		if c.Mapping == m {
			return c.Index
		}
	}
	return -1
}

// CountMapped returns the number of columns mapped to m.
func CountMapped(cols []Column, m model.Mapping) int {
	n := 0
	for _, c := range cols {
		if c.Mapping == m {
			n++
		}
	}
	return n
}
