// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/fbatier/inventory"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "inventory")
	c.Register(&removeCmd{}, "inventory")
	c.Register(&restockCmd{}, "inventory")
	c.Register(&listCmd{}, "inventory")
	c.Register(&searchCmd{}, "inventory")

	c.Register(&reportCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "inventory.txt", "Path to the inventory data file")

// openTracker loads the inventory file into a tracker, starting empty
// when the file does not exist yet. Skipped malformed lines are
// reported on stderr, never silently dropped.
func openTracker() (*inventory.Tracker, error) {
	tracker, skipped, err := inventory.OpenTracker(*inventoryFile)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Printf("warning: skipped %d malformed line(s) in %s", skipped, *inventoryFile)
	}
	return tracker, nil
}

// printMarkdown renders markdown for the terminal and prints it.
// If rendering fails the raw markdown is printed instead.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
