package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// addCmd creates new tracked accounts.
type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create a new tracked account" }
func (*addCmd) Usage() string {
	return `bnalpha add <name> [<name>...]

  Creates one account per name, pre-seeded with zero point records for the
  16 most recent days. Names are trimmed and must be unique.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one account name is required.")
		return subcommands.ExitUsageError
	}

	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	status := subcommands.ExitSuccess
	for _, name := range f.Args() {
		u, err := store.AddUser(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", name, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Added account %q (%s)\n", u.Name, u.ID)
	}
	return status
}
