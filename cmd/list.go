package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fbatier/inventory/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all items in the inventory" }
func (*listCmd) Usage() string {
	return `ivt list

  Lists the whole inventory in insertion order.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := openTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Inventory(tracker.ListItems()))
	return subcommands.ExitSuccess
}
