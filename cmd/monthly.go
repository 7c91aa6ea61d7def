package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/hijri"
	"github.com/ehsanjabbari/shoeseli/renderer"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	month int
	year  int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a month's sales aggregated per day" }
func (*monthlyCmd) Usage() string {
	return `seli monthly [-m <month>] [-y <year>]

  Displays the sales of one Persian month, one line per sale date. Month
  and year default to today's.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.month, "m", 0, "Month of the report (defaults to this month)")
	f.IntVar(&c.year, "y", 0, "Year of the report (defaults to this year)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}

	today := hijri.Today()
	if c.month == 0 {
		c.month = today.Month
	}
	if c.year == 0 {
		c.year = today.Year
	}

	printMarkdown(renderer.MonthlyMarkdown(l.MonthlyReport(c.month, c.year)))
	return subcommands.ExitSuccess
}
