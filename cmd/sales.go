package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/renderer"
)

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	count int
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list recorded sales, newest first" }
func (*salesCmd) Usage() string {
	return `seli sales [-n <count>]

  Lists the most recent sales. -n -1 lists all of them.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 20, "Number of sales to list, -1 for all")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}

	printMarkdown(renderer.SalesMarkdown(l.SaleRows(c.count)))
	return subcommands.ExitSuccess
}
