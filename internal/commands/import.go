package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tilikirja-dev/tilikirja/internal/analyze"
	"github.com/tilikirja-dev/tilikirja/internal/auditlog"
	"github.com/tilikirja-dev/tilikirja/internal/csvfile"
	"github.com/tilikirja-dev/tilikirja/internal/importer"
	"github.com/tilikirja-dev/tilikirja/internal/ledger"
	"github.com/tilikirja-dev/tilikirja/internal/preset"
)

// ledgerAdapter narrows *ledger.Store to the interface the importer
// wants.
type ledgerAdapter struct {
	store *ledger.Store
}

func (a ledgerAdapter) Begin() (importer.Tx, error) {
	return a.store.Begin()
}

func newImportCommand() *cobra.Command {
	var dir string
	var account string
	var presetName string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank CSV export into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, dir, args[0], account, presetName)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&account, "account", "", "counter-account number (overrides preset and config)")
	cmd.Flags().StringVar(&presetName, "preset", "", "force a named import preset")

	return cmd
}

func runImport(cmd *cobra.Command, dir, file, account, presetName string) error {
	cfg, store, err := openProject(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}
	if !csvfile.IsValid(data) {
		return fmt.Errorf("%s does not look like a CSV export", file)
	}

	table := csvfile.Parse(data)
	cols := analyze.Columns(table)

	p, err := pickPreset(table, presetName)
	if err != nil {
		return err
	}

	opts := importer.Options{DefaultAccount: cfg.Import.DefaultAccount}
	if p != nil {
		cmd.Printf("Detected format: %s\n", p.Name())
		cols = p.Apply(cols)
		opts.RowFilter = p.ValidRow
		if p.DefaultAccount() != "" {
			opts.DefaultAccount = p.DefaultAccount()
		}
	}
	if account != "" {
		opts.DefaultAccount = account
	}

	resolver, err := ledger.LoadResolver(store)
	if err != nil {
		return err
	}

	res := importer.Run(table, cols, resolver, ledgerAdapter{store: store}, opts)

	for _, w := range res.Warnings {
		cmd.Printf("warning: %s\n", w)
	}
	if !res.Success {
		for _, e := range res.Errors {
			cmd.PrintErrf("error: %s\n", e)
		}
		return fmt.Errorf("import failed")
	}

	batchID := uuid.NewString()
	if err := recordBatch(store, batchID, filepath.Base(file), res); err != nil {
		return err
	}

	logEntry := auditlog.Entry{
		Timestamp: time.Now().UTC(),
		BatchID:   batchID,
		Filename:  filepath.Base(file),
		Documents: res.DocumentsCreated,
		Entries:   res.EntriesCreated,
		Warnings:  len(res.Warnings),
	}
	if err := auditlog.Append(filepath.Join(dir, cfg.Import.LogDir), []auditlog.Entry{logEntry}); err != nil {
		return err
	}

	cmd.Printf("Imported %d documents, %d entries (batch %s)\n",
		res.DocumentsCreated, res.EntriesCreated, batchID)
	return nil
}

// pickPreset returns the forced preset when a name was given, otherwise
// whatever the registry recognizes, which may be nil.
func pickPreset(table csvfile.Table, name string) (preset.Preset, error) {
	registry := preset.DefaultRegistry()
	if name != "" {
		p := registry.Get(name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", name)
		}
		return p, nil
	}
	return registry.Detect(table), nil
}

// recordBatch stores the import batch row in its own short transaction,
// after the entry batch has already committed.
func recordBatch(store *ledger.Store, batchID, filename string, res importer.Result) error {
	sess, err := store.Begin()
	if err != nil {
		return err
	}
	if err := sess.RecordImport(batchID, filename, res.DocumentsCreated, res.EntriesCreated); err != nil {
		_ = sess.Rollback()
		return err
	}
	return sess.Commit()
}
