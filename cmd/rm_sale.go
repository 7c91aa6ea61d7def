package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// rmSaleCmd holds the flags for the 'rm-sale' subcommand.
type rmSaleCmd struct {
	id int64
}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "delete a sale and restore its stock" }
func (*rmSaleCmd) Usage() string {
	return `seli rm-sale -id <id>

  Deletes a sale and returns its quantity to the product's stock.
`
}

func (c *rmSaleCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Sale id (required)")
}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		errorf("Error: -id is required")
		return subcommands.ExitUsageError
	}

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	if l.Sale(c.id) == nil {
		return errorf("Error: sale %d not found", c.id)
	}
	l.DeleteSale(c.id)
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	fmt.Printf("Deleted sale %d\n", c.id)
	return subcommands.ExitSuccess
}
