package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	id int64
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a product from the catalog" }
func (*rmCmd) Usage() string {
	return `seli rm -id <id>

  Removes a product. Its recorded sales and entries are kept and show up
  as belonging to a deleted product.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Product id (required)")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		errorf("Error: -id is required")
		return subcommands.ExitUsageError
	}

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	if l.Product(c.id) == nil {
		return errorf("Error: product %d not found", c.id)
	}
	l.DeleteProduct(c.id)
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	fmt.Printf("Removed product %d\n", c.id)
	return subcommands.ExitSuccess
}
