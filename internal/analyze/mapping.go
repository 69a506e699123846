package analyze

import (
	"strings"

	"github.com/tilikirja-dev/tilikirja/internal/model"
)

// mappingRule decides one mapping. The header must contain every
// keyword of at least one group (most groups are single keywords; the
// document-number rule needs both "tosite" and a number word), and the
// column type must pass the gate.
type mappingRule struct {
	mapping model.Mapping
	gate    func(model.ColumnType) bool
	groups  [][]string
}

var mappingRules = []mappingRule{
	{model.MapDate, model.ColumnType.IsDate, groups("pvm", "date", "päivä", "kirjauspäivä", "maksupäivä", "arvopäivä")},
	{model.MapDebit, isMoneyType, groups("debet", "veloitus")},
	{model.MapCredit, isMoneyType, groups("kredit", "credit", "hyvitys")},
	{model.MapAmount, isMoneyType, groups("summa", "amount", "yhteensä", "euroa", "määrä")},
	{model.MapDescription, isTextType, groups("selite", "viesti", "kuvaus", "description", "message", "memo")},
	{model.MapAccountNumber, isIntegerType, groups("tilinro", "tilinumero", "tili", "account")},
	{model.MapAccountName, isTextType, groups("tilin nimi", "tilinimi", "account name")},
	{model.MapIBAN, isIBANType, groups("iban", "tili", "tilinumero")},
	{model.MapReference, isReferenceType, groups("viite", "viitenro", "viitenumero", "reference")},
	{model.MapDocumentNumber, isIntegerType, [][]string{{"tosite", "nro"}, {"tosite", "numero"}, {"voucher"}}},
	{model.MapPayeePayer, isTextType, groups("saaja", "maksaja", "payee", "payer")},
	{model.MapVATPercent, isVATType, groups("alv", "vat", "vero")},
}

// GuessMapping proposes a bookkeeping field for a column based on its
// header text and inferred type. Matching is substring-based over the
// case-folded header. Returns MapNone when no rule fires.
func GuessMapping(header string, typ model.ColumnType) model.Mapping {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, rule := range mappingRules {
		if !rule.gate(typ) {
			continue
		}
		for _, group := range rule.groups {
			if containsAll(h, group) {
				return rule.mapping
			}
		}
	}
	return model.MapNone
}

func groups(keywords ...string) [][]string {
	g := make([][]string, len(keywords))
	for i, kw := range keywords {
		g[i] = []string{kw}
	}
	return g
}

func containsAll(header string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(header, kw) {
			return false
		}
	}
	return true
}

func isMoneyType(t model.ColumnType) bool { return t == model.ColumnMoney }

func isTextType(t model.ColumnType) bool {
	return t == model.ColumnText || t == model.ColumnEmpty
}

// isIntegerType accepts both integer classifications: short all-digit
// runs classify as numbers before the account-number rule is reached.
func isIntegerType(t model.ColumnType) bool {
	return t == model.ColumnNumber || t == model.ColumnAccountNumber
}

func isIBANType(t model.ColumnType) bool { return t == model.ColumnIBAN }

func isReferenceType(t model.ColumnType) bool {
	return t == model.ColumnReference || t == model.ColumnNumber
}

func isVATType(t model.ColumnType) bool {
	return t == model.ColumnMoney || t == model.ColumnNumber
}
