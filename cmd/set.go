package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// setCmd edits one counter of one account's point record for one date.
type setCmd struct {
	user  string
	date  string
	field string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set one point counter for an account and date" }
func (*setCmd) Usage() string {
	return `bnalpha set -u <account> -f <balance|trade|activity|claim> [-d <date>] <value>

  Updates a single counter of the account's point record for the date,
  creating a zero-filled record first when the date is new. The other three
  counters are untouched. Unparseable values count as 0.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Account name or id.")
	f.StringVar(&c.date, "d", bnalpha.Today().String(), "Date of the record.")
	f.StringVar(&c.field, "f", "", "Point counter: balance, trade, activity, or claim.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" || c.field == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -u, -f, and a value are required.")
		return subcommands.ExitUsageError
	}
	field, err := bnalpha.ParsePointField(c.field)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
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

	value := bnalpha.CoercePoints(f.Arg(0))
	if err := store.SetPointField(u.ID, on, field, value); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set %s %s on %s to %g\n", u.Name, field, on, value)
	return subcommands.ExitSuccess
}
