package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fbatier/inventory/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search items by name, category or id" }
func (*searchCmd) Usage() string {
	return `ivt search <query>

  Searches the inventory. The query is a case-insensitive substring of
  the name or category; an all-digit query also matches the item with
  exactly that id.

Usage Examples:
$ ivt search laptop
$ ivt search 2
`
}

func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	query := f.Arg(0)
	items, err := tracker.Search(query)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.SearchResults(query, items))
	return subcommands.ExitSuccess
}
