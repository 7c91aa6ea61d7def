package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/hijri"
)

// receiveCmd holds the flags for the 'receive' subcommand.
type receiveCmd struct {
	product int64
	qty     int
	date    string
	notes   string
}

func (*receiveCmd) Name() string     { return "receive" }
func (*receiveCmd) Synopsis() string { return "record a stock entry of received goods" }
func (*receiveCmd) Usage() string {
	return `seli receive -product <id> -qty <n> [-d <YYYY/MM/DD>] [-notes <text>]

  Records received goods and increments the product's stock. The date
  defaults to today.
`
}

func (c *receiveCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.product, "product", 0, "Product id (required)")
	f.IntVar(&c.qty, "qty", 0, "Quantity received (required)")
	f.StringVar(&c.date, "d", "", "Entry date (defaults to today)")
	f.StringVar(&c.notes, "notes", "", "Free-form note")
}

func (c *receiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == 0 {
		errorf("Error: -product is required")
		return subcommands.ExitUsageError
	}
	if c.date != "" {
		if _, err := hijri.Parse(c.date); err != nil {
			errorf("Error: %v", err)
			return subcommands.ExitUsageError
		}
	}

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	entry, err := l.RecordEntry(c.product, c.qty, c.date, c.notes)
	if err != nil {
		return errorf("Error: %v", err)
	}
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	p := l.Product(c.product)
	fmt.Printf("Recorded entry %d: %s +%d, %d in stock\n",
		entry.ID, p.Name, entry.Quantity, p.CurrentStock)
	return subcommands.ExitSuccess
}
