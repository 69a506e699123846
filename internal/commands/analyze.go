package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tilikirja-dev/tilikirja/internal/analyze"
	"github.com/tilikirja-dev/tilikirja/internal/csvfile"
)

func newAnalyzeCommand() *cobra.Command {
	var presetName string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Show how a bank CSV export would be interpreted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], presetName)
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "force a named import preset")

	return cmd
}

func runAnalyze(cmd *cobra.Command, file, presetName string) error {
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
	if p != nil {
		cols = p.Apply(cols)
	}

	cmd.Printf("File: %s\n", file)
	cmd.Printf("Encoding: %s, delimiter %q, %d data rows\n",
		table.Encoding, table.Delimiter, len(table.DataRows()))
	if p != nil {
		cmd.Printf("Format: %s (default account %s)\n", p.Name(), p.DefaultAccount())
	}
	cmd.Println()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tHeader\tType\tMapping\tSample")
	for _, c := range cols {
		sample := ""
		if len(c.Samples) > 0 {
			sample = c.Samples[0]
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.Index, c.Header, c.Type.Label(), c.Mapping.Label(), sample)
	}
	return w.Flush()
}
