package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input           string
	replaceProducts bool
	replaceSales    bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "read a JSON backup back into the ledger" }
func (*importCmd) Usage() string {
	return `seli import -i <file> [-replace-products] [-replace-sales]

  Reads a backup. By default products merge by name and sales by id;
  the replace flags overwrite the corresponding collection instead.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to read (required)")
	f.BoolVar(&c.replaceProducts, "replace-products", false, "Replace the product catalog instead of merging")
	f.BoolVar(&c.replaceSales, "replace-sales", false, "Replace the sales instead of merging")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		errorf("Error: -i is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		return errorf("Error: %v", err)
	}
	defer in.Close()

	s, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}
	opts := shoeseli.ImportOptions{
		ReplaceProducts: c.replaceProducts,
		ReplaceSales:    c.replaceSales,
	}
	if err := shoeseli.Import(in, l, opts); err != nil {
		return errorf("Error: %v", err)
	}
	if err := s.Save(l); err != nil {
		return errorf("Error: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Imported backup from %s: %d products, %d sales\n",
		c.input, len(l.Products()), len(l.Sales()))
	return subcommands.ExitSuccess
}
