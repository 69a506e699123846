package commands

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilikirja-dev/tilikirja/internal/auditlog"
	"github.com/tilikirja-dev/tilikirja/internal/config"
)

func newLogCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the import history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")

	return cmd
}

func runLog(cmd *cobra.Command, dir string) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return fmt.Errorf("not a bookkeeping project (run init first): %w", err)
	}

	entries, err := auditlog.Read(filepath.Join(dir, cfg.Import.LogDir))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("No imports yet")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Imported\tFile\tDocuments\tEntries\tWarnings\tBatch")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			e.Timestamp.Format(time.RFC3339), e.Filename, e.Documents, e.Entries, e.Warnings, e.BatchID)
	}
	return w.Flush()
}
