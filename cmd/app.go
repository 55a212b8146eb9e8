// Package cmd implements the CLI application to manage the finance registry.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&removeUserCmd{}, "profiles")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storageFile = flag.String("file", finance.DefaultStorageFile, "Path to the user profiles file (JSON format)")

// loadRegistry loads the registry from the app storage file. A missing file
// yields an empty registry.
func loadRegistry() (*finance.Registry, error) {
	return finance.LoadRegistry(*storageFile)
}

// saveRegistry persists the registry back to the app storage file. Every
// mutating command calls it before returning.
func saveRegistry(reg *finance.Registry) error {
	return finance.SaveRegistry(*storageFile, reg)
}

// printMarkdown renders a markdown document for the terminal. If rendering
// fails, the raw markdown is printed instead.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
