package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilikirja-dev/tilikirja/internal/model"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name    string
		samples []string
		want    model.ColumnType
	}{
		{"empty", nil, model.ColumnEmpty},
		{"iban", []string{"FI21 1234 5600 0007 85", "FI0680001200062637"}, model.ColumnIBAN},
		{"reference", []string{"1232", "12344"}, model.ColumnReference},
		{"date fi", []string{"15.3.2024", "1.12.2023"}, model.ColumnDateFI},
		{"date iso", []string{"2024-03-15", "2023-12-01"}, model.ColumnDateISO},
		{"date us", []string{"3/15/2024", "12/1/2023"}, model.ColumnDateUS},
		{"money", []string{"-120,00", "1.234,56", "50,00 €"}, model.ColumnMoney},
		{"money intl", []string{"1,234.56", "-99.95"}, model.ColumnMoney},
		{"number", []string{"1910", "123456"}, model.ColumnNumber},
		{"number spaced", []string{"12 345", "67 890"}, model.ColumnNumber},
		{"text", []string{"Vuokra", "Palkka"}, model.ColumnText},
		{"mixed falls to text", []string{"15.3.2024", "Vuokra"}, model.ColumnText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.samples))
		})
	}
}

func TestDetectTypeOrderBias(t *testing.T) {
	// Small integers satisfy the Finnish money shape, so money wins
	// over number for 1-3 digit values.
	assert.Equal(t, model.ColumnMoney, DetectType([]string{"120", "45"}))
	// A valid reference number is classified before dates or numbers.
	assert.Equal(t, model.ColumnReference, DetectType([]string{"12345672"}))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("15.3.2024", model.ColumnDateFI)
	require.True(t, ok)
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	d, ok = ParseDate("2024-03-15", model.ColumnDateISO)
	require.True(t, ok)
	assert.Equal(t, 15, d.Day())

	d, ok = ParseDate("3/15/2024", model.ColumnDateUS)
	require.True(t, ok)
	assert.Equal(t, 15, d.Day())

	// Untyped column tries every layout.
	d, ok = ParseDate("15.3.2024", model.ColumnText)
	require.True(t, ok)
	assert.Equal(t, 15, d.Day())

	_, ok = ParseDate("not a date", model.ColumnDateFI)
	assert.False(t, ok)

	// Strict layouts do not cross over.
	_, ok = ParseDate("2024-03-15", model.ColumnDateFI)
	assert.False(t, ok)
}
