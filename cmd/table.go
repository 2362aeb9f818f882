package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
	"github.com/leo-web3/bn-alpha-tools/renderer"
)

// tableCmd displays the dense date × account grid.
type tableCmd struct {
	date string
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display the date × account grid" }
func (*tableCmd) Usage() string {
	return `bnalpha table [-d <date>]

  Shows every account's records in one table, most recent date first, with
  per-account cycle points, tomorrow preview, and monetary totals.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", bnalpha.Today().String(), "Reference date for the cycle figures.")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := bnalpha.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	report := bnalpha.NewTableReport(store.Users(), on)
	printMarkdown(renderer.TableMarkdown(report))
	return subcommands.ExitSuccess
}
