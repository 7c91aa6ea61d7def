package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli"
	"github.com/ehsanjabbari/shoeseli/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	query  string
	status string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list products with stock levels" }
func (*listCmd) Usage() string {
	return `seli list [-q <term>] [-status <out-of-stock|low|in-stock>]

  Lists the catalog. -q filters by a case-insensitive substring of the
  name or category, -status by stock status.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search term")
	f.StringVar(&c.status, "status", "", "Stock status filter")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}

	products := l.SearchProducts(c.query)
	if c.status != "" {
		status, err := shoeseli.ParseStockStatus(c.status)
		if err != nil {
			errorf("Error: %v", err)
			return subcommands.ExitUsageError
		}
		filtered := products[:0]
		for _, p := range products {
			if p.Status() == status {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	printMarkdown(renderer.InventoryMarkdown(products))
	return subcommands.ExitSuccess
}
