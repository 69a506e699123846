package csvfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid([]byte("Päivämäärä;Summa\n15.3.2024;-120,00\n")))
	assert.True(t, IsValid([]byte("a,b,c\n1,2,3\n4,5\n"))) // one missing field tolerated
}

func TestIsValidRejectsHeaderOnly(t *testing.T) {
	assert.False(t, IsValid([]byte("Päivämäärä;Summa\n")))
}

func TestIsValidRejectsEmpty(t *testing.T) {
	assert.False(t, IsValid(nil))
	assert.False(t, IsValid([]byte("")))
}

func TestIsValidRejectsSingleColumn(t *testing.T) {
	assert.False(t, IsValid([]byte("justtext\nmoretext\n")))
}

func TestIsValidRejectsRaggedRows(t *testing.T) {
	assert.False(t, IsValid([]byte("a;b;c\n1;2;3\n1;2;3;4;5\n")))
}

func TestIsValidRejectsBinary(t *testing.T) {
	data := bytes.Repeat([]byte{0x00, 0x01, 'a'}, 400)
	assert.False(t, IsValid(data))
}
