package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion is a no-op unless invoked by the shell completion hook.
	userArgs := predict.Something
	spec := &complete.Command{
		Flags: map[string]complete.Predictor{
			"file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"add":         {Args: userArgs},
			"balance":     {Args: userArgs},
			"report":      {Args: userArgs},
			"remove-user": {Args: userArgs},
			"summary":     {},
		},
	}
	spec.Complete("pfm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
