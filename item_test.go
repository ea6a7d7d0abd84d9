package inventory

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"Generic", "Electronics", "Grocery"} {
		kind, err := ParseKind(s)
		if err != nil {
			t.Errorf("ParseKind(%q) returned an unexpected error: %v", s, err)
		}
		if string(kind) != s {
			t.Errorf("ParseKind(%q) = %q", s, kind)
		}
	}

	if _, err := ParseKind("electronics"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseKind(\"electronics\") error = %v, want ErrInvalidInput (kinds are case-sensitive)", err)
	}
}

func TestItemEqual(t *testing.T) {
	a := Item{ID: 1, Kind: KindElectronics, Name: "TV", Price: P(500), Quantity: 2, Category: "General",
		Electronics: &ElectronicsInfo{Brand: "Acme", WarrantyMonths: 12}}
	b := a.clone()
	if !a.Equal(b) {
		t.Error("clone is not Equal to the original")
	}

	b.Electronics.WarrantyMonths = 6
	if a.Equal(b) {
		t.Error("items with different payloads compare Equal")
	}
}
