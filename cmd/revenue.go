package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// revenueCmd records one day of realized revenue for an account.
type revenueCmd struct {
	user string
	date string
}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "record a day's revenue for an account" }
func (*revenueCmd) Usage() string {
	return `bnalpha revenue -u <account> [-d <date>] <amount>

  Replaces the account's revenue record for the date. Unparseable values
  count as 0.
`
}

func (c *revenueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Account name or id.")
	f.StringVar(&c.date, "d", bnalpha.Today().String(), "Date of the record.")
}

func (c *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -u and an amount are required.")
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

	amount := bnalpha.CoerceAmount(f.Arg(0))
	if err := store.SetRevenue(u.ID, on, amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set %s revenue on %s to %s\n", u.Name, on, amount.StringFixed(2))
	return subcommands.ExitSuccess
}
