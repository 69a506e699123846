package preset

import (
	"strings"

	"github.com/tilikirja-dev/tilikirja/internal/analyze"
	"github.com/tilikirja-dev/tilikirja/internal/csvfile"
	"github.com/tilikirja-dev/tilikirja/internal/model"
)

// Procountor handles ledger exports from the Procountor accounting
// software: semicolon-delimited, Finnish headers, fixed leading
// columns. Column positions are stable across versions but extra
// trailing columns vary, so positions are tried first and header
// keywords cover the rest.
type Procountor struct{}

const (
	procountorMinColumns  = 6
	procountorMinKeywords = 3

	procountorColDate    = 0
	procountorColVoucher = 1
	procountorColDesc    = 2
	procountorColAccount = 3
	procountorColDebit   = 4
	procountorColCredit  = 5
)

// procountorKeywords are the header words used to recognize the format.
var procountorKeywords = []string{"kirjauspäivä", "tosite", "selite", "tili", "debet", "kredit"}

// procountorHeaderMap maps header keywords to mappings for columns
// beyond the fixed positions.
var procountorHeaderMap = []struct {
	keyword string
	mapping model.Mapping
}{
	{"alv", model.MapVATPercent},
	{"viite", model.MapReference},
	{"maksaja", model.MapPayeePayer},
}

// Name implements Preset.
func (p *Procountor) Name() string { return "procountor" }

// Matches implements Preset: semicolon delimiter, enough columns, and
// at least three of the known Finnish headers present.
func (p *Procountor) Matches(t csvfile.Table) bool {
	if t.Delimiter != ';' || t.ColumnCount() < procountorMinColumns {
		return false
	}
	joined := strings.ToLower(strings.Join(t.Headers(), ";"))
	found := 0
	for _, kw := range procountorKeywords {
		if strings.Contains(joined, kw) {
			found++
		}
	}
	return found >= procountorMinKeywords
}

// Apply implements Preset.
func (p *Procountor) Apply(cols []analyze.Column) []analyze.Column {
	fixed := map[int]model.Mapping{
		procountorColDate:    model.MapDate,
		procountorColVoucher: model.MapDocumentNumber,
		procountorColDesc:    model.MapDescription,
		procountorColAccount: model.MapAccountNumber,
		procountorColDebit:   model.MapDebit,
		procountorColCredit:  model.MapCredit,
	}

	out := make([]analyze.Column, len(cols))
	for i, c := range cols {
		if m, ok := fixed[c.Index]; ok {
			out[i] = analyze.WithMapping(c, m)
			continue
		}
		if m, ok := headerMapping(c.Header); ok {
			out[i] = analyze.WithMapping(c, m)
			continue
		}
		out[i] = c
	}
	return out
}

func headerMapping(header string) (model.Mapping, bool) {
	h := strings.ToLower(header)
	for _, hm := range procountorHeaderMap {
		if strings.Contains(h, hm.keyword) {
			return hm.mapping, true
		}
	}
	return "", false
}

// DefaultAccount implements Preset. 1910 is the bank account in the
// default chart.
func (p *Procountor) DefaultAccount() string { return "1910" }

// ValidRow implements Preset: Procountor exports end with summary rows
// that leave the date column blank.
func (p *Procountor) ValidRow(row []string) bool {
	return procountorColDate < len(row) && strings.TrimSpace(row[procountorColDate]) != ""
}
