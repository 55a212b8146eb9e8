package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction for a user" }
func (*addCmd) Usage() string {
	return `pfm add <user> <amount> <date> <description>

  Records a transaction for a user, creating the profile on first use.
  A positive amount is income, a negative amount is an expense recorded
  with its magnitude. The date uses the YYYY-MM-DD format.

Usage Examples:
# Record a salary.
$ pfm add John 1000.00 2024-08-01 Salary
# Record a utility bill.
$ pfm add John -200.00 2024-08-05 Utilities

`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 4 {
		fmt.Fprintln(os.Stderr, "Error: user, amount, date, and description are required to add a transaction.")
		return subcommands.ExitUsageError
	}
	user := f.Arg(0)

	amount, err := finance.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := finance.ParseDate(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	description := strings.Join(f.Args()[3:], " ")

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := reg.Record(user, amount, day, description)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s for %s: %s\n", tx.What(), user, tx)
	return subcommands.ExitSuccess
}
