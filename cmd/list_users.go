package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
	md "github.com/nao1215/markdown"
)

// usersCmd lists the tracked accounts.
type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list tracked accounts" }
func (*usersCmd) Usage() string {
	return `bnalpha users

  Lists all accounts in creation order with their current cycle points.
`
}

func (c *usersCmd) SetFlags(f *flag.FlagSet) {}

func (c *usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{Header: []string{"Name", "积分 (cycle)", "ID"}}
	for _, u := range store.Users() {
		table.Rows = append(table.Rows, []string{
			u.Name,
			fmt.Sprintf("%g", bnalpha.CurrentCyclePoints(u.PointRecords)),
			u.ID,
		})
	}
	doc.Table(table)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
