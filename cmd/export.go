package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a JSON backup of products and sales" }
func (*exportCmd) Usage() string {
	return `seli export [-o <file>]

  Writes the products and sales as one JSON document, to stdout unless
  -o names a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}

	if c.output == "" {
		if err := shoeseli.Export(os.Stdout, l); err != nil {
			return errorf("Error: %v", err)
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		return errorf("Error: %v", err)
	}
	defer out.Close()
	if err := shoeseli.Export(out, l); err != nil {
		return errorf("Error: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Exported backup to %s\n", c.output)
	return subcommands.ExitSuccess
}
