package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// batchCmd applies one day of data to several accounts at once.
type batchCmd struct {
	date    string
	targets stringList
	all     bool

	balance  string
	trade    string
	activity string
	claim    string
	cost     string
	revenue  string
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "apply one day of data to several accounts" }
func (*batchCmd) Usage() string {
	return `bnalpha batch [-d <date>] (-u <account> ... | -all) [-balance <v>] [-trade <v>] [-activity <v>] [-claim <v>] [-cost <v>] [-revenue <v>]

  Writes the same values to every targeted account for the date: the four
  point counters are replaced as a whole (omitted ones become 0), and cost
  and revenue records are upserted. At least one target is required.
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", bnalpha.Today().String(), "Date of the records.")
	f.Var(&c.targets, "u", "Target account name or id. Repeatable.")
	f.BoolVar(&c.all, "all", false, "Target every account.")
	f.StringVar(&c.balance, "balance", "0", "Balance reward points.")
	f.StringVar(&c.trade, "trade", "0", "Trade reward points.")
	f.StringVar(&c.activity, "activity", "0", "Activity points.")
	f.StringVar(&c.claim, "claim", "0", "Claim cost points.")
	f.StringVar(&c.cost, "cost", "0", "Fee (USD).")
	f.StringVar(&c.revenue, "revenue", "0", "Revenue (USD).")
}

func (c *batchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var ids []string
	if c.all {
		for _, u := range store.Users() {
			ids = append(ids, u.ID)
		}
	} else {
		for _, target := range c.targets {
			u, err := resolveUser(store, target)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			ids = append(ids, u.ID)
		}
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no target accounts, pass -u or -all.")
		return subcommands.ExitUsageError
	}

	store.ApplyBatch(ids, on, bnalpha.BatchValues{
		BalanceReward:  bnalpha.CoercePoints(c.balance),
		TradeReward:    bnalpha.CoercePoints(c.trade),
		ActivityPoints: bnalpha.CoercePoints(c.activity),
		ClaimCost:      bnalpha.CoercePoints(c.claim),
		Cost:           bnalpha.CoerceAmount(c.cost),
		Revenue:        bnalpha.CoerceAmount(c.revenue),
	})
	fmt.Printf("Applied %s to %d account(s)\n", on, len(ids))
	return subcommands.ExitSuccess
}
