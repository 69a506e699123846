package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tilikirja-dev/tilikirja/internal/ledger"
	"github.com/tilikirja-dev/tilikirja/internal/model"
)

func newAccountsCommand() *cobra.Command {
	var dir string
	var accountType string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(cmd, dir, accountType)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&accountType, "type", "", "filter by account type (asset, liability, equity, revenue, expense)")

	return cmd
}

func runAccounts(cmd *cobra.Command, dir, accountType string) error {
	_, store, err := openProject(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	resolver, err := ledger.LoadResolver(store)
	if err != nil {
		return err
	}

	accounts := resolver.All()
	if accountType != "" {
		accounts = resolver.ByType(model.AccountType(accountType))
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Number\tName\tType")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Number, a.Name, a.Type)
	}
	return w.Flush()
}
