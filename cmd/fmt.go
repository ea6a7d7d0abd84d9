package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the inventory file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `ivt fmt

  Reloads the inventory file and writes it back in canonical form:
  versioned header, two-digit prices, kind-specific fields in order.
  Malformed lines are dropped (and counted on stderr).
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := openTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := tracker.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting inventory file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Rewrote %s in canonical form.\n", *inventoryFile)
	return subcommands.ExitSuccess
}
