package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd deletes an account and all its records.
type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an account and all its records" }
func (*rmCmd) Usage() string {
	return `bnalpha rm <account>

  Deletes the account (by name or id) together with its point, cost, and
  revenue records. There is no undo.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account is required.")
		return subcommands.ExitUsageError
	}

	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	u, err := resolveUser(store, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteUser(u.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted account %q\n", u.Name)
	return subcommands.ExitSuccess
}
