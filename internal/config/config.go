package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "tilikirja.yaml"

// Config represents the top-level tilikirja.yaml configuration.
type Config struct {
	Ledger       LedgerConfig  `yaml:"ledger"`
	Import       ImportConfig  `yaml:"import"`
	BankAccounts []BankAccount `yaml:"bank_accounts,omitempty"`
}

// LedgerConfig locates the ledger database.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// ImportConfig holds import defaults.
type ImportConfig struct {
	// DefaultAccount is the counter-account used when the import
	// command is not given one on the command line.
	DefaultAccount string `yaml:"default_account"`
	// LogDir is where the import audit log is written.
	LogDir string `yaml:"log_dir"`
}

// BankAccount maps a bank feed to a chart-of-accounts entry.
type BankAccount struct {
	Name      string `yaml:"name"`
	IBAN      string `yaml:"iban,omitempty"`
	AccountNo string `yaml:"account_no"`
}

// Load reads a tilikirja.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path: "ledger.db",
		},
		Import: ImportConfig{
			DefaultAccount: "1910",
			LogDir:         "logs",
		},
	}
}

// AccountForIBAN returns the chart account number configured for the
// given IBAN, if any.
func (c *Config) AccountForIBAN(iban string) (string, bool) {
	for _, b := range c.BankAccounts {
		if b.IBAN != "" && b.IBAN == iban {
			return b.AccountNo, true
		}
	}
	return "", false
}
