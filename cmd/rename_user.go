package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// renameCmd changes an account's display name.
type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "change an account's display name" }
func (*renameCmd) Usage() string {
	return `bnalpha rename <account> <new-name>

  Renames the account (looked up by name or id). Unlike add, rename does not
  check the new name for uniqueness.
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: an account and a new name are required.")
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
	old := u.Name
	if err := store.RenameUser(u.ID, f.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Renamed %q to %q\n", old, u.Name)
	return subcommands.ExitSuccess
}
