package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tilikirja-dev/tilikirja/internal/model"
)

func TestGuessMapping(t *testing.T) {
	tests := []struct {
		header string
		typ    model.ColumnType
		want   model.Mapping
	}{
		{"Päivämäärä", model.ColumnDateFI, model.MapDate},
		{"Kirjauspäivä", model.ColumnDateISO, model.MapDate},
		{"Date", model.ColumnDateUS, model.MapDate},
		{"Debet", model.ColumnMoney, model.MapDebit},
		{"Veloitus EUR", model.ColumnMoney, model.MapDebit},
		{"Kredit", model.ColumnMoney, model.MapCredit},
		{"Hyvitys", model.ColumnMoney, model.MapCredit},
		{"Summa", model.ColumnMoney, model.MapAmount},
		{"Määrä EUR", model.ColumnMoney, model.MapAmount},
		{"Viesti", model.ColumnText, model.MapDescription},
		{"Selite", model.ColumnText, model.MapDescription},
		{"Tilinumero", model.ColumnNumber, model.MapAccountNumber},
		{"Tilin nimi", model.ColumnText, model.MapAccountName},
		{"Saajan tilinumero", model.ColumnIBAN, model.MapIBAN},
		{"IBAN", model.ColumnIBAN, model.MapIBAN},
		{"Viitenumero", model.ColumnReference, model.MapReference},
		{"Viite", model.ColumnNumber, model.MapReference},
		{"Tositteen nro", model.ColumnNumber, model.MapDocumentNumber},
		{"Saaja/Maksaja", model.ColumnText, model.MapPayeePayer},
		{"ALV-%", model.ColumnNumber, model.MapVATPercent},
		{"Balance", model.ColumnMoney, model.MapNone},
		{"Unrelated", model.ColumnText, model.MapNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuessMapping(tt.header, tt.typ), "header %q type %s", tt.header, tt.typ)
	}
}

func TestGuessMappingTypeGates(t *testing.T) {
	// A date keyword on a non-date column does not map to the date field.
	assert.Equal(t, model.MapNone, GuessMapping("Päivämäärä", model.ColumnText))
	// A money keyword on a text column does not map to an amount field.
	assert.Equal(t, model.MapNone, GuessMapping("Summa", model.ColumnText))
	// The document-number rule needs both substrings.
	assert.Equal(t, model.MapNone, GuessMapping("Nro", model.ColumnNumber))
}

func TestGuessMappingOrder(t *testing.T) {
	// "Debet summa" hits the debit rule before the amount rule.
	assert.Equal(t, model.MapDebit, GuessMapping("Debet summa", model.ColumnMoney))
}
