package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// costCmd records one day of trading wear for an account.
type costCmd struct {
	user string
	date string
}

func (*costCmd) Name() string     { return "cost" }
func (*costCmd) Synopsis() string { return "record a day's fee for an account" }
func (*costCmd) Usage() string {
	return `bnalpha cost -u <account> [-d <date>] <fee>

  Replaces the account's cost record for the date. Unparseable values count
  as 0.
`
}

func (c *costCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Account name or id.")
	f.StringVar(&c.date, "d", bnalpha.Today().String(), "Date of the record.")
}

func (c *costCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -u and a fee value are required.")
		return subcommands.ExitUsageError
	}
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

	u, err := resolveUser(store, c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fee := bnalpha.CoerceAmount(f.Arg(0))
	if err := store.SetCost(u.ID, on, fee); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set %s cost on %s to %s\n", u.Name, on, fee.StringFixed(2))
	return subcommands.ExitSuccess
}
