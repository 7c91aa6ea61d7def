package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli"
	"github.com/ehsanjabbari/shoeseli/hijri"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	product int64
	qty     int
	store   string
	date    string
	notes   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `seli sell -product <id> -qty <n> [-store <id>] [-d <YYYY/MM/DD>] [-notes <text>]

  Records a sale and decrements the product's stock. The date defaults to
  today, the store to the configured default store.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.product, "product", 0, "Product id (required)")
	f.IntVar(&c.qty, "qty", 0, "Quantity sold (required)")
	f.StringVar(&c.store, "store", "", "Store the sale was made in (defaults to the global -store)")
	f.StringVar(&c.date, "d", "", "Sale date (defaults to today)")
	f.StringVar(&c.notes, "notes", "", "Free-form note")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	store := c.store
	if store == "" {
		store = *storeID
	}
	if !shoeseli.ValidStore(store) {
		errorf("Error: unknown store %q, configured stores: %v", store, shoeseli.Stores)
		return subcommands.ExitUsageError
	}

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	sale, err := l.RecordSale(c.product, store, c.qty, c.date, c.notes)
	if err != nil {
		return errorf("Error: %v", err)
	}
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	p := l.Product(c.product)
	fmt.Printf("Recorded sale %d: %s x%d at store %s, %d left in stock\n",
		sale.ID, p.Name, sale.Quantity, sale.StoreID, p.CurrentStock)
	return subcommands.ExitSuccess
}
