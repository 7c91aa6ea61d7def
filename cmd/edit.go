package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/renderer"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	id       int64
	name     string
	category string
	stock    int
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a product's name, category or stock" }
func (*editCmd) Usage() string {
	return `seli edit -id <id> [-name <name>] [-category <category>] [-stock <n>]

  Overwrites the product's fields. Omitted flags keep the current value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Product id (required)")
	f.StringVar(&c.name, "name", "", "New product name")
	f.StringVar(&c.category, "category", "", "New product category")
	f.IntVar(&c.stock, "stock", -1, "Corrected stock level")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		errorf("Error: -id is required")
		return subcommands.ExitUsageError
	}

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	p := l.Product(c.id)
	if p == nil {
		return errorf("Error: product %d not found", c.id)
	}

	name, category, stock := p.Name, p.Category, p.CurrentStock
	if c.name != "" {
		name = c.name
	}
	if c.category != "" {
		category = c.category
	}
	if c.stock >= 0 {
		stock = c.stock
	}
	if err := l.EditProduct(c.id, name, category, stock); err != nil {
		return errorf("Error: %v", err)
	}
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	printMarkdown(renderer.ProductMarkdown(l.Product(c.id)))
	return subcommands.ExitSuccess
}
