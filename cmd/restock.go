package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fbatier/inventory"
	"github.com/google/subcommands"
)

type restockCmd struct {
	id    int
	delta int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add or remove stock for an item" }
func (*restockCmd) Usage() string {
	return `ivt restock -id <id> -q <delta>

  Applies a signed quantity delta to an item: a positive delta adds
  stock, a negative one removes it. An update that would drive the
  quantity below zero is rejected.

Usage Examples:
$ ivt restock -id 2 -q 10
$ ivt restock -id 2 -q -3
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the item to restock")
	f.IntVar(&c.delta, "q", 0, "Signed quantity delta")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 || c.delta == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quantity, err := tracker.UpdateStock(c.id, c.delta)
	if errors.Is(err, inventory.ErrNegativeStock) {
		fmt.Fprintf(os.Stderr, "Error: %v (quantity unchanged)\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	it, err := tracker.Item(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stock for %q (id %d) is now %d.\n", it.Name, c.id, quantity)
	return subcommands.ExitSuccess
}
