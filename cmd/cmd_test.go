package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run parses the args into the command's flag set and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("could not parse args %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddRestockRemoveFlow(t *testing.T) {
	*inventoryFile = filepath.Join(t.TempDir(), "inventory.txt")

	if got := run(t, &addCmd{}, "-n", "Laptop", "-q", "5", "-p", "999.99", "-c", "Electronics"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", got)
	}
	data, err := os.ReadFile(*inventoryFile)
	if err != nil {
		t.Fatalf("inventory file missing after add: %v", err)
	}
	if !strings.Contains(string(data), "1,Generic,Laptop,999.99,5,Electronics") {
		t.Errorf("unexpected file content after add:\n%s", data)
	}

	// Removing more stock than on hand is rejected.
	if got := run(t, &restockCmd{}, "-id", "1", "-q", "-15"); got != subcommands.ExitFailure {
		t.Errorf("restock below zero exited with %v, want failure", got)
	}
	if got := run(t, &restockCmd{}, "-id", "1", "-q", "-3"); got != subcommands.ExitSuccess {
		t.Errorf("restock exited with %v", got)
	}

	if got := run(t, &removeCmd{}, "-id", "1"); got != subcommands.ExitSuccess {
		t.Errorf("remove exited with %v", got)
	}
	data, _ = os.ReadFile(*inventoryFile)
	if strings.Contains(string(data), "Laptop") {
		t.Errorf("file still contains the removed item:\n%s", data)
	}
}

func TestAddCmd_UsageErrors(t *testing.T) {
	*inventoryFile = filepath.Join(t.TempDir(), "inventory.txt")

	if got := run(t, &addCmd{}, "-q", "5", "-p", "1"); got != subcommands.ExitUsageError {
		t.Errorf("add without a name exited with %v, want usage error", got)
	}
	if got := run(t, &addCmd{}, "-n", "Milk", "-q", "1", "-p", "1", "-kind", "Grocery", "-expiry", "nope"); got != subcommands.ExitUsageError {
		t.Errorf("add with a bad expiry exited with %v, want usage error", got)
	}
}
