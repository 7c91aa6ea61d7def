package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// rmEntryCmd holds the flags for the 'rm-entry' subcommand.
type rmEntryCmd struct {
	id int64
}

func (*rmEntryCmd) Name() string     { return "rm-entry" }
func (*rmEntryCmd) Synopsis() string { return "delete a stock entry and reverse it" }
func (*rmEntryCmd) Usage() string {
	return `seli rm-entry -id <id>

  Deletes a stock entry and subtracts its quantity from the product's
  stock, even below zero if the goods were already sold.
`
}

func (c *rmEntryCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Entry id (required)")
}

func (c *rmEntryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		errorf("Error: -id is required")
		return subcommands.ExitUsageError
	}

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	if l.Entry(c.id) == nil {
		return errorf("Error: entry %d not found", c.id)
	}
	l.DeleteEntry(c.id)
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	fmt.Printf("Deleted entry %d\n", c.id)
	return subcommands.ExitSuccess
}
