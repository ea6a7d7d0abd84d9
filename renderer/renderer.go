// Package renderer turns inventory data into markdown strings. It
// never prints: the cmd layer decides where and how the markdown is
// displayed.
package renderer

import (
	"fmt"
	"strings"

	"github.com/fbatier/inventory"
)

// Item renders a one-line human summary of an item, used in command
// confirmations.
func Item(it inventory.Item) string {
	switch it.Kind {
	case inventory.KindElectronics:
		return fmt.Sprintf("%s (%s, %d months warranty): %d in stock at %s",
			it.Name, it.Electronics.Brand, it.Electronics.WarrantyMonths, it.Quantity, it.Price)
	case inventory.KindGrocery:
		return fmt.Sprintf("%s (%s, expires %s): %d in stock at %s",
			it.Name, it.Category, it.Grocery.Expiry, it.Quantity, it.Price)
	default:
		return fmt.Sprintf("%s (%s): %d in stock at %s", it.Name, it.Category, it.Quantity, it.Price)
	}
}

// Inventory renders the full item listing as a markdown table.
func Inventory(items []inventory.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Inventory\n\n")
	if len(items) == 0 {
		fmt.Fprintf(&b, "No items in inventory.\n")
		return b.String()
	}
	itemTable(&b, items)
	fmt.Fprintf(&b, "\n%d item(s).\n", len(items))
	return b.String()
}

// SearchResults renders the outcome of a search query.
func SearchResults(query string, items []inventory.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search %q\n\n", query)
	if len(items) == 0 {
		fmt.Fprintf(&b, "No items matching %q.\n", query)
		return b.String()
	}
	itemTable(&b, items)
	fmt.Fprintf(&b, "\n%d matching item(s).\n", len(items))
	return b.String()
}

// LowStock renders the low stock report.
func LowStock(items []inventory.Item, threshold int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Low Stock Report (below %d)\n\n", threshold)
	if len(items) == 0 {
		fmt.Fprintf(&b, "No items below a stock of %d.\n", threshold)
		return b.String()
	}
	fmt.Fprintf(&b, "| ID | Name | Qty | Kind |\n")
	fmt.Fprintf(&b, "|---:|------|----:|------|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", it.ID, it.Name, it.Quantity, it.Kind)
	}
	return b.String()
}

func itemTable(b *strings.Builder, items []inventory.Item) {
	fmt.Fprintf(b, "| ID | Name | Price | Qty | Kind | Category | Details |\n")
	fmt.Fprintf(b, "|---:|------|------:|----:|------|----------|---------|\n")
	for _, it := range items {
		fmt.Fprintf(b, "| %d | %s | %s | %d | %s | %s | %s |\n",
			it.ID, it.Name, it.Price, it.Quantity, it.Kind, it.Category, details(it))
	}
}

// details renders the kind-specific payload of an item.
func details(it inventory.Item) string {
	switch it.Kind {
	case inventory.KindElectronics:
		return fmt.Sprintf("Brand: %s, Warranty: %d months", it.Electronics.Brand, it.Electronics.WarrantyMonths)
	case inventory.KindGrocery:
		return fmt.Sprintf("Expires: %s", it.Grocery.Expiry)
	default:
		return ""
	}
}
