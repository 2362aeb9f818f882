package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
	"github.com/leo-web3/bn-alpha-tools/renderer"
)

// statsCmd displays the all-accounts stat cards.
type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display cost/revenue totals and trailing windows" }
func (*statsCmd) Usage() string {
	return `bnalpha stats

  Shows lifetime cost and revenue totals across all accounts plus the
  trailing windows configured in the config file (default 15/30/90/365
  days).
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	report := bnalpha.NewStatsReport(store.Users(), loadConfig().Windows, time.Now())
	printMarkdown(renderer.StatsMarkdown(report))
	return subcommands.ExitSuccess
}
