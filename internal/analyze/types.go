// Package analyze infers what each CSV column contains and which
// bookkeeping field it should feed. Both inferences are ordered rule
// cascades: the first rule whose predicate holds wins, so rule order
// is part of the contract.
package analyze

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tilikirja-dev/tilikirja/internal/model"
	"github.com/tilikirja-dev/tilikirja/internal/money"
	"github.com/tilikirja-dev/tilikirja/internal/refnum"
)

// Date layouts for the three recognized date variants.
const (
	LayoutFI  = "2.1.2006"
	LayoutISO = "2006-01-02"
	LayoutUS  = "1/2/2006"
)

var (
	ibanRe          = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
	accountNumberRe = regexp.MustCompile(`^\d{4,8}$`)
)

// typeRule pairs a column type with the predicate a single sample must
// satisfy for the column to classify as that type.
type typeRule struct {
	typ   model.ColumnType
	match func(string) bool
}

// typeRules is evaluated in order; the first rule matching every
// sample decides the column type.
var typeRules = []typeRule{
	{model.ColumnIBAN, isIBAN},
	{model.ColumnReference, refnum.Valid},
	{model.ColumnDateFI, isDate(LayoutFI)},
	{model.ColumnDateISO, isDate(LayoutISO)},
	{model.ColumnDateUS, isDate(LayoutUS)},
	{model.ColumnMoney, money.Matches},
	{model.ColumnNumber, isInteger},
	{model.ColumnAccountNumber, accountNumberRe.MatchString},
}

// DetectType classifies a column from its non-blank sample values.
// No samples means the column is empty; no matching rule means text.
func DetectType(samples []string) model.ColumnType {
	if len(samples) == 0 {
		return model.ColumnEmpty
	}
	for _, rule := range typeRules {
		if allMatch(samples, rule.match) {
			return rule.typ
		}
	}
	return model.ColumnText
}

func allMatch(samples []string, match func(string) bool) bool {
	for _, s := range samples {
		if !match(s) {
			return false
		}
	}
	return true
}

func isIBAN(s string) bool {
	return ibanRe.MatchString(strings.ReplaceAll(s, " ", ""))
}

func isDate(layout string) func(string) bool {
	return func(s string) bool {
		_, err := time.Parse(layout, s)
		return err == nil
	}
}

func isInteger(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	_, err := strconv.Atoi(s)
	return err == nil
}

// ParseDate parses a date value according to the column type it was
// classified under. Columns mapped to the date field by hand may carry
// a non-date type; those fall back to trying every layout.
func ParseDate(s string, typ model.ColumnType) (time.Time, bool) {
	layouts := []string{LayoutFI, LayoutISO, LayoutUS}
	switch typ {
	case model.ColumnDateFI:
		layouts = []string{LayoutFI}
	case model.ColumnDateISO:
		layouts = []string{LayoutISO}
	case model.ColumnDateUS:
		layouts = []string{LayoutUS}
	}
	for _, layout := range layouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
