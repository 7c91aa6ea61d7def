package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/renderer"
)

// entriesCmd holds the flags for the 'entries' subcommand.
type entriesCmd struct {
	count int
}

func (*entriesCmd) Name() string     { return "entries" }
func (*entriesCmd) Synopsis() string { return "list recorded stock entries, newest first" }
func (*entriesCmd) Usage() string {
	return `seli entries [-n <count>]

  Lists the most recent stock entries. -n -1 lists all of them.
`
}

func (c *entriesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 20, "Number of entries to list, -1 for all")
}

func (c *entriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}

	printMarkdown(renderer.EntriesMarkdown(l.EntryRows(c.count)))
	return subcommands.ExitSuccess
}
