package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/fbatier/inventory"
	"github.com/fbatier/inventory/date"
)

func items() []inventory.Item {
	return []inventory.Item{
		{ID: 1, Kind: inventory.KindElectronics, Name: "Laptop", Price: inventory.P(999.99), Quantity: 5,
			Category: "Electronics", Electronics: &inventory.ElectronicsInfo{Brand: "Lenovo", WarrantyMonths: 24}},
		{ID: 2, Kind: inventory.KindGrocery, Name: "Milk", Price: inventory.P(1.2), Quantity: 12,
			Category: "Dairy", Grocery: &inventory.GroceryInfo{Expiry: date.New(2026, time.September, 30)}},
	}
}

func TestInventory(t *testing.T) {
	md := Inventory(items())

	for _, want := range []string{
		"| 1 | Laptop | $999.99 | 5 | Electronics |",
		"Brand: Lenovo, Warranty: 24 months",
		"| 2 | Milk | $1.20 | 12 | Grocery | Dairy | Expires: 2026-09-30 |",
		"2 item(s).",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Inventory() output does not contain %q:\n%s", want, md)
		}
	}
}

func TestInventory_Empty(t *testing.T) {
	md := Inventory(nil)
	if !strings.Contains(md, "No items in inventory.") {
		t.Errorf("Inventory(nil) output = %q, want the empty message", md)
	}
}

func TestSearchResults_Empty(t *testing.T) {
	md := SearchResults("widget", nil)
	if !strings.Contains(md, `No items matching "widget".`) {
		t.Errorf("SearchResults() output = %q, want the no-match message", md)
	}
}

func TestLowStock(t *testing.T) {
	md := LowStock(items()[:1], 10)
	if !strings.Contains(md, "| 1 | Laptop | 5 | Electronics |") {
		t.Errorf("LowStock() output does not contain the item row:\n%s", md)
	}

	md = LowStock(nil, 5)
	if !strings.Contains(md, "No items below a stock of 5.") {
		t.Errorf("LowStock(nil) output = %q, want the empty message", md)
	}
}

func TestItem(t *testing.T) {
	got := Item(items()[0])
	want := "Laptop (Lenovo, 24 months warranty): 5 in stock at $999.99"
	if got != want {
		t.Errorf("Item() = %q, want %q", got, want)
	}
}
