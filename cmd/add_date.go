package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// addDateCmd seeds a grid row for a date on every account.
type addDateCmd struct{}

func (*addDateCmd) Name() string     { return "adddate" }
func (*addDateCmd) Synopsis() string { return "add a date row to the grid for every account" }
func (*addDateCmd) Usage() string {
	return `bnalpha adddate [<date>]

  Seeds a zero-valued point record for the date (default today) on every
  account that has none, so the date appears as a grid row. Accounts that
  already hold data for the date are untouched.
`
}

func (c *addDateCmd) SetFlags(f *flag.FlagSet) {}

func (c *addDateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := bnalpha.Today()
	if f.NArg() > 0 {
		var err error
		on, err = bnalpha.ParseDate(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	store.AddDate(on)
	fmt.Printf("Added date %s for %d account(s)\n", on, len(store.Users()))
	return subcommands.ExitSuccess
}
