package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/renderer"
)

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	days int
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display the top selling products" }
func (*perfCmd) Usage() string {
	return `seli perf [-days <n>]

  Ranks the top ten products by units sold over the last n days.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Length of the reporting period in days")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days <= 0 {
		errorf("Error: -days must be positive")
		return subcommands.ExitUsageError
	}

	_, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}

	printMarkdown(renderer.PerformanceMarkdown(l.ProductPerformance(c.days)))
	return subcommands.ExitSuccess
}
