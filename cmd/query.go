package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// queryCmd evaluates a JSONPath expression against the dataset.
type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the dataset" }
func (*queryCmd) Usage() string {
	return `bnalpha query <jsonpath>

  Evaluates the expression against the account collection (the same JSON
  shape 'export -format json' produces) and prints the result.

Usage Examples:
$ bnalpha query '$[*].name'
$ bnalpha query '$[0].costRecords[*].fee'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required.")
		return subcommands.ExitUsageError
	}

	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	// jsonpath operates on the generic decoded form, so round-trip the
	// collection through JSON first.
	data, err := json.Marshal(store.Users())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing data: %v\n", err)
		return subcommands.ExitFailure
	}
	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding data: %v\n", err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(f.Arg(0), jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
