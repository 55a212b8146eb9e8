package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeUserCmd struct{}

func (*removeUserCmd) Name() string     { return "remove-user" }
func (*removeUserCmd) Synopsis() string { return "delete a user profile and all its transactions" }
func (*removeUserCmd) Usage() string {
	return `pfm remove-user <user>

  Deletes the user profile and every transaction it holds, then saves
  the registry.

`
}

func (*removeUserCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a user name is required.")
		return subcommands.ExitUsageError
	}
	user := f.Arg(0)

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := reg.RemoveUser(user); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("User profile %q removed.\n", user)
	return subcommands.ExitSuccess
}
