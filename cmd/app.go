// Package cmd implements the CLI application to manage the shoe inventory.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"

	"github.com/ehsanjabbari/shoeseli"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() runs the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "products")
	c.Register(&editCmd{}, "products")
	c.Register(&rmCmd{}, "products")
	c.Register(&listCmd{}, "products")

	c.Register(&sellCmd{}, "records")
	c.Register(&receiveCmd{}, "records")
	c.Register(&rmSaleCmd{}, "records")
	c.Register(&rmEntryCmd{}, "records")
	c.Register(&salesCmd{}, "records")
	c.Register(&entriesCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&perfCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")

	c.Register(&topicCmd{}, "documentation")
}

// Config holds the environment defaults of the global flags.
type Config struct {
	DataDir string `envconfig:"DATA_DIR" default:".shoeseli"`
	Store   string `envconfig:"STORE" default:"151"`
}

func loadConfig() Config {
	var cfg Config
	if err := envconfig.Process("seli", &cfg); err != nil {
		log.Println("warning, ignoring environment configuration:", err)
		cfg = Config{DataDir: ".shoeseli", Store: shoeseli.DefaultStore}
	}
	return cfg
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.
var (
	defaults = loadConfig()
	dataDir  = flag.String("data", defaults.DataDir, "Path to the data directory holding the inventory files")
	storeID  = flag.String("store", defaults.Store, "Default store for recorded sales")
)

// loadLedger opens the data directory and reads the full ledger state.
func loadLedger() (*shoeseli.Store, *shoeseli.Ledger, error) {
	s := shoeseli.NewStore(*dataDir)
	l, err := s.Load()
	if err != nil {
		return nil, nil, err
	}
	return s, l, nil
}

// errorf reports a command failure on stderr.
func errorf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// printMarkdown pretty prints a markdown document on the terminal,
// falling back to the raw source when rendering fails.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
