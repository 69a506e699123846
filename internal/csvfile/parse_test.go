package csvfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line  string
		delim rune
		want  []string
	}{
		{`a,"b,c",d`, ',', []string{"a", "b,c", "d"}},
		{`a,"b""c",d`, ',', []string{"a", `b"c`, "d"}},
		{"a;b;c", ';', []string{"a", "b", "c"}},
		{"a;;c", ';', []string{"a", "", "c"}},
		{"a;b;", ';', []string{"a", "b", ""}},
		{"single", ',', []string{"single"}},
		{"a\tb", '\t', []string{"a", "b"}},
		{"a;b\r", ';', []string{"a", "b"}},
		{`"quoted"`, ',', []string{"quoted"}},
		{"", ',', []string{""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitLine(tt.line, tt.delim), "line %q", tt.line)
	}
}

func TestParse(t *testing.T) {
	data := []byte("Päivämäärä;Summa;Viesti\n15.3.2024;-120,00;Vuokra\n16.3.2024;50,00;Lasku\n")
	table := Parse(data)

	assert.Equal(t, ';', int32(table.Delimiter))
	assert.Equal(t, EncodingUTF8, table.Encoding)
	assert.Equal(t, 3, table.RowCount())
	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, []string{"Päivämäärä", "Summa", "Viesti"}, table.Headers())

	rows := table.DataRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"15.3.2024", "-120,00", "Vuokra"}, rows[0])
}

func TestParseSkipsBlankLines(t *testing.T) {
	data := []byte("a,b\n\n1,2\n   \n3,4\n\n")
	table := Parse(data)
	assert.Equal(t, 3, table.RowCount())
}

func TestParseCRLF(t *testing.T) {
	data := []byte("a;b\r\n1;2\r\n")
	table := Parse(data)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, []string{"1", "2"}, table.DataRows()[0])
}

func TestParseEmpty(t *testing.T) {
	table := Parse(nil)
	assert.Equal(t, 0, table.RowCount())
	assert.Nil(t, table.Headers())
	assert.Nil(t, table.DataRows())
}

func TestParseLatin1(t *testing.T) {
	// "Päivä;Määrä" in ISO-8859-1.
	data := []byte{'P', 0xE4, 'i', 'v', 0xE4, ';', 'M', 0xE4, 0xE4, 'r', 0xE4, '\n', '1', ';', '2', '\n'}
	table := Parse(data)
	assert.Equal(t, EncodingISO8859_1, table.Encoding)
	assert.Equal(t, []string{"Päivä", "Määrä"}, table.Headers())
}
