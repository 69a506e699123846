package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tilikirja-dev/tilikirja/internal/config"
	"github.com/tilikirja-dev/tilikirja/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var defaultAccount string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new bookkeeping project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, defaultAccount)
		},
	}

	cmd.Flags().StringVar(&defaultAccount, "default-account", "1910", "counter-account number for imports")

	return cmd
}

func runInit(cmd *cobra.Command, dir, defaultAccount string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	cfg.Import.DefaultAccount = defaultAccount

	if err := os.MkdirAll(filepath.Join(dir, cfg.Import.LogDir), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	// Create the ledger database and seed the standard chart.
	store, err := ledger.Open(filepath.Join(dir, cfg.Ledger.Path))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SeedAccounts(ledger.DefaultChart()); err != nil {
		return fmt.Errorf("seeding chart of accounts: %w", err)
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	cmd.Printf("Initialized bookkeeping project at %s\n", dir)
	return nil
}
