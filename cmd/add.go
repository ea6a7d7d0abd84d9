package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fbatier/inventory"
	"github.com/fbatier/inventory/date"
	"github.com/fbatier/inventory/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	name     string
	quantity int
	price    float64
	category string
	kind     string
	brand    string
	warranty int
	expiry   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item to the inventory, merging on an existing name" }
func (*addCmd) Usage() string {
	return `ivt add -n <name> -q <quantity> -p <price> [-c <category>] [-kind <kind>] [-brand <brand> -warranty <months>] [-expiry <date>]

  Adds an item to the inventory. If an item with the same name already
  exists, the quantity is merged into it instead of creating a new record.

Usage Examples:
$ ivt add -n 'Laptop' -q 5 -p 999.99 -kind Electronics -brand Lenovo -warranty 24
$ ivt add -n 'Milk' -q 12 -p 1.20 -kind Grocery -c Dairy -expiry 2026-09-30
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Item name")
	f.IntVar(&c.quantity, "q", 0, "Initial quantity")
	f.Float64Var(&c.price, "p", 0, "Unit price")
	f.StringVar(&c.category, "c", "", "Item category (defaults to General)")
	f.StringVar(&c.kind, "kind", string(inventory.KindGeneric), "Item kind (Generic, Electronics, Grocery)")
	f.StringVar(&c.brand, "brand", "", "Brand (Electronics only)")
	f.IntVar(&c.warranty, "warranty", 0, "Warranty period in months (Electronics only)")
	f.StringVar(&c.expiry, "expiry", "", "Expiry date YYYY-MM-DD (Grocery only)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.quantity < 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	kind, err := inventory.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	it := inventory.Item{
		Kind:     kind,
		Name:     c.name,
		Price:    inventory.P(c.price),
		Quantity: c.quantity,
		Category: c.category,
	}
	switch kind {
	case inventory.KindElectronics:
		it.Electronics = &inventory.ElectronicsInfo{Brand: c.brand, WarrantyMonths: c.warranty}
	case inventory.KindGrocery:
		expiry, err := date.Parse(c.expiry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing expiry date: %v\n", err)
			return subcommands.ExitUsageError
		}
		it.Grocery = &inventory.GroceryInfo{Expiry: expiry}
	}

	tracker, err := openTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, merged, err := tracker.AddItem(it)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stored, err := tracker.Item(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if merged {
		fmt.Printf("Merged %d unit(s) into existing item %d: %s\n", c.quantity, id, renderer.Item(stored))
	} else {
		fmt.Printf("Added item %d: %s\n", id, renderer.Item(stored))
	}
	return subcommands.ExitSuccess
}
