package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ehsanjabbari/shoeseli/hijri"
	"github.com/ehsanjabbari/shoeseli/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the sales of one date" }
func (*dailyCmd) Usage() string {
	return `seli daily [-d <YYYY/MM/DD>]

  Displays the sales recorded on a single date, defaulting to today.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, l, err := loadLedger()
	if err != nil {
		return errorf("Error: %v", err)
	}

	date := c.date
	if date == "" {
		date = hijri.Today().String()
	} else if _, err := hijri.Parse(date); err != nil {
		errorf("Error: %v", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.DailyMarkdown(l.DailyReport(date)))
	return subcommands.ExitSuccess
}
