package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/renderer"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	category string
	initial  int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product to the catalog" }
func (*addCmd) Usage() string {
	return `seli add -name <name> [-category <category>] [-initial <n>]

  Adds a product with an initial stock quantity.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.category, "category", "", "Product category")
	f.IntVar(&c.initial, "initial", 0, "Initial stock quantity")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		errorf("Error: -name is required")
		return subcommands.ExitUsageError
	}

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	p, err := l.AddProduct(c.name, c.category, c.initial)
	if err != nil {
		return errorf("Error: %v", err)
	}
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	printMarkdown(renderer.ProductMarkdown(p))
	return subcommands.ExitSuccess
}
