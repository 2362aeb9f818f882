package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// exportCmd writes the full dataset to a file.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full dataset to a CSV or JSON file" }
func (*exportCmd) Usage() string {
	return `bnalpha export [-format csv|json] [-o <file>]

  Writes the dataset to bn_alpha_data_<today>.csv (the dense grid, one row
  per date) or bn_alpha_data_<today>.json (the raw account collection,
  re-importable with 'import').
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Export format: csv or json.")
	f.StringVar(&c.output, "o", "", "Output file (default bn_alpha_data_<today>.<format>).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "csv" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown export format %q, want csv or json.\n", c.format)
		return subcommands.ExitUsageError
	}

	store, db, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	output := c.output
	if output == "" {
		output = fmt.Sprintf("bn_alpha_data_%s.%s", bnalpha.Today(), c.format)
	}
	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch c.format {
	case "csv":
		err = bnalpha.ExportCSV(out, store.Users())
	case "json":
		err = bnalpha.ExportJSON(out, store.Users())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d account(s) to %s\n", len(store.Users()), output)
	return subcommands.ExitSuccess
}
