// Command bnalpha is the terminal front-end of the alpha tracker.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/leo-web3/bn-alpha-tools/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits; otherwise it is a no-op.
	cmp := &complete.Command{
		Flags: map[string]complete.Predictor{
			"db":     predict.Files("*.db"),
			"config": predict.Files("*.toml"),
		},
		Sub: map[string]*complete.Command{
			"add": {}, "rm": {}, "rename": {}, "users": {},
			"set": {}, "cost": {}, "revenue": {}, "adddate": {}, "batch": {},
			"table": {}, "stats": {},
			"export": {}, "import": {}, "query": {}, "topic": {},
		},
	}
	cmp.Complete("bnalpha")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
