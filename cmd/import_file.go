package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// importCmd replaces the dataset with a JSON file's contents.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the dataset with a JSON export" }
func (*importCmd) Usage() string {
	return `bnalpha import <file>

  Replaces the whole dataset with the file's contents. The file must be a
  JSON array of accounts, as produced by 'export -format json'. On any
  failure the current dataset is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	users, err := bnalpha.ImportUsers(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	store.ReplaceAll(users)
	fmt.Printf("Imported %d account(s) from %s\n", len(users), f.Arg(0))
	return subcommands.ExitSuccess
}
