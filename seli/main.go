package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/ehsanjabbari/shoeseli"
	"github.com/ehsanjabbari/shoeseli/cmd"
)

// completion describes the command tree for shell completion. It must be
// consulted before flag.Parse.
func completion() *complete.Command {
	date := map[string]complete.Predictor{"d": predict.Nothing}
	byID := map[string]complete.Predictor{"id": predict.Nothing}
	stores := predict.Set(shoeseli.Stores)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":  predict.Dirs("*"),
			"store": stores,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"name": predict.Nothing, "category": predict.Nothing, "initial": predict.Nothing,
			}},
			"edit": {Flags: map[string]complete.Predictor{
				"id": predict.Nothing, "name": predict.Nothing, "category": predict.Nothing, "stock": predict.Nothing,
			}},
			"rm":   {Flags: byID},
			"list": {Flags: map[string]complete.Predictor{
				"q": predict.Nothing, "status": predict.Set{"out-of-stock", "low", "in-stock"},
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"product": predict.Nothing, "qty": predict.Nothing, "store": stores,
				"d": predict.Nothing, "notes": predict.Nothing,
			}},
			"receive": {Flags: map[string]complete.Predictor{
				"product": predict.Nothing, "qty": predict.Nothing, "d": predict.Nothing, "notes": predict.Nothing,
			}},
			"rm-sale":  {Flags: byID},
			"rm-entry": {Flags: byID},
			"sales":    {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"entries":  {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"summary":  {},
			"daily":    {Flags: date},
			"monthly": {Flags: map[string]complete.Predictor{
				"m": predict.Nothing, "y": predict.Nothing,
			}},
			"perf":   {Flags: map[string]complete.Predictor{"days": predict.Nothing}},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"import": {Flags: map[string]complete.Predictor{
				"i": predict.Files("*.json"), "replace-products": predict.Nothing, "replace-sales": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "calendar", "ledger", "reports", "backup", "stores", "*"}},
		},
	}
}

func main() {
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
