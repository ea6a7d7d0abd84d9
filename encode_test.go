package inventory

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fbatier/inventory/date"
)

func sampleItems() []Item {
	return []Item{
		{ID: 1, Kind: KindElectronics, Name: "Laptop", Price: P(999.99), Quantity: 5, Category: "Electronics",
			Electronics: &ElectronicsInfo{Brand: "Lenovo", WarrantyMonths: 24}},
		{ID: 2, Kind: KindGrocery, Name: "Milk", Price: P(1.2), Quantity: 12, Category: "Dairy",
			Grocery: &GroceryInfo{Expiry: date.New(2026, time.September, 30)}},
		{ID: 3, Kind: KindGeneric, Name: "Cable", Price: P(5), Quantity: 40, Category: "General"},
	}
}

func TestEncodeInventory(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeInventory(&buf, sampleItems()); err != nil {
		t.Fatalf("EncodeInventory() returned an unexpected error: %v", err)
	}

	want := `#inventory v1
1,Electronics,Laptop,999.99,5,Electronics,Lenovo,24
2,Grocery,Milk,1.20,12,Dairy,2026-09-30
3,Generic,Cable,5.00,40,General
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeInventory() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

// Encoding then decoding a non-empty inventory reproduces the same
// items, kind-specific fields included, in the same order.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	items := sampleItems()

	var buf bytes.Buffer
	if err := EncodeInventory(&buf, items); err != nil {
		t.Fatalf("EncodeInventory() returned an unexpected error: %v", err)
	}
	decoded, skipped, err := DecodeInventory(&buf)
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("DecodeInventory() skipped %d lines, want 0", skipped)
	}
	if len(decoded) != len(items) {
		t.Fatalf("DecodeInventory() returned %d items, want %d", len(decoded), len(items))
	}
	for i := range items {
		if !decoded[i].Equal(items[i]) {
			t.Errorf("item %d did not round-trip.\nGot:  %+v\nWant: %+v", i, decoded[i], items[i])
		}
	}
}

func TestDecodeInventory_SkipsMalformedLines(t *testing.T) {
	in := `#inventory v1
1,Electronics,Laptop,999.99,5,Electronics,Lenovo,24
garbage line
2,Grocery
3,UnknownKind,Thing,1.00,1,General
4,Generic,Cable,5.00,40,General
5,Generic,Broken,not-a-price,40,General
`
	items, skipped, err := DecodeInventory(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	if skipped != 4 {
		t.Errorf("skipped = %d, want 4", skipped)
	}
	if len(items) != 2 {
		t.Fatalf("decoded %d items, want 2", len(items))
	}
	if items[0].ID != 1 || items[1].ID != 4 {
		t.Errorf("decoded ids = (%d, %d), want (1, 4)", items[0].ID, items[1].ID)
	}
}

func TestDecodeInventory_ToleratesMissingHeader(t *testing.T) {
	// Files written before the version marker existed have no header
	// and may omit the category.
	in := "1,Generic,Cable,5.00,40\n"
	items, skipped, err := DecodeInventory(strings.NewReader(in))
	if err != nil || skipped != 0 {
		t.Fatalf("DecodeInventory() = (skipped=%d, err=%v), want a clean load", skipped, err)
	}
	if len(items) != 1 {
		t.Fatalf("decoded %d items, want 1", len(items))
	}
	if items[0].Category != DefaultCategory {
		t.Errorf("category = %q, want default %q", items[0].Category, DefaultCategory)
	}
}

func TestDecodeInventory_Empty(t *testing.T) {
	items, skipped, err := DecodeInventory(strings.NewReader(""))
	if err != nil || skipped != 0 || len(items) != 0 {
		t.Errorf("DecodeInventory(\"\") = (%v, %d, %v), want an empty clean result", items, skipped, err)
	}
}
