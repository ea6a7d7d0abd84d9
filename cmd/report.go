package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fbatier/inventory/renderer"
	"github.com/google/subcommands"
)

// defaultLowStockThreshold is the stock level below which an item shows
// up in the report when no threshold is given.
const defaultLowStockThreshold = 5

type reportCmd struct {
	threshold int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "report items running low on stock" }
func (*reportCmd) Usage() string {
	return `ivt report [-t <threshold>]

  Lists the items whose quantity is strictly below the threshold.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.threshold, "t", defaultLowStockThreshold, "Stock threshold")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := openTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	items, err := tracker.LowStock(c.threshold)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.LowStock(items, c.threshold))
	return subcommands.ExitSuccess
}
