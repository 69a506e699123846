package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Path = "books/ledger.db"
	cfg.BankAccounts = []BankAccount{
		{Name: "Yritystili", IBAN: "FI2112345600000785", AccountNo: "1910"},
	}

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "books/ledger.db", got.Ledger.Path)
	assert.Equal(t, "1910", got.Import.DefaultAccount)
	assert.Equal(t, "logs", got.Import.LogDir)
	require.Len(t, got.BankAccounts, 1)
	assert.Equal(t, "Yritystili", got.BankAccounts[0].Name)
	assert.Equal(t, "1910", got.BankAccounts[0].AccountNo)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "ledger.db", cfg.Ledger.Path)
	assert.Equal(t, "1910", cfg.Import.DefaultAccount)
	assert.Equal(t, "logs", cfg.Import.LogDir)
	assert.Empty(t, cfg.BankAccounts)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "path: ledger.db")
	assert.Contains(t, contents, "default_account: \"1910\"")
	assert.Contains(t, contents, "log_dir: logs")
}

func TestAccountForIBAN(t *testing.T) {
	cfg := Default()
	cfg.BankAccounts = []BankAccount{
		{Name: "Yritystili", IBAN: "FI2112345600000785", AccountNo: "1910"},
		{Name: "Kassatili", AccountNo: "1920"},
	}

	no, ok := cfg.AccountForIBAN("FI2112345600000785")
	require.True(t, ok)
	assert.Equal(t, "1910", no)

	_, ok = cfg.AccountForIBAN("FI0000000000000000")
	assert.False(t, ok)
}
