// Package inventory implements the core of a single-user inventory
// tracker: an in-memory store of items with id allocation and
// merge-on-add semantics, a line-oriented text codec for persistence,
// and a validated command façade consumed by the CLI.
package inventory

import (
	"fmt"

	"github.com/fbatier/inventory/date"
)

// Kind is a typed string identifying the variant of an item.
type Kind string

// Item kinds.
const (
	KindGeneric     Kind = "Generic"
	KindElectronics Kind = "Electronics"
	KindGrocery     Kind = "Grocery"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindGeneric, KindElectronics, KindGrocery:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown item kind %q", ErrInvalidInput, s)
	}
}

// DefaultCategory is assigned to items created without a category.
const DefaultCategory = "General"

// ElectronicsInfo holds the fields specific to electronics items.
type ElectronicsInfo struct {
	Brand          string
	WarrantyMonths int
}

// GroceryInfo holds the fields specific to grocery items.
type GroceryInfo struct {
	Expiry date.Date
}

// Item is a single inventory record. The kind-specific payloads are
// carried next to the common fields and dispatched on the Kind tag;
// at most one of them is non-nil, matching the Kind.
type Item struct {
	ID       int
	Kind     Kind
	Name     string
	Price    Price
	Quantity int
	Category string

	Electronics *ElectronicsInfo
	Grocery     *GroceryInfo
}

// clone returns a deep copy of the item, so that snapshots handed out
// by the store never alias its own records.
func (it Item) clone() Item {
	if it.Electronics != nil {
		e := *it.Electronics
		it.Electronics = &e
	}
	if it.Grocery != nil {
		g := *it.Grocery
		it.Grocery = &g
	}
	return it
}

// Equal reports whether two items carry the same values, payloads included.
func (it Item) Equal(other Item) bool {
	if it.ID != other.ID || it.Kind != other.Kind || it.Name != other.Name ||
		!it.Price.Equal(other.Price) || it.Quantity != other.Quantity || it.Category != other.Category {
		return false
	}
	switch {
	case (it.Electronics == nil) != (other.Electronics == nil):
		return false
	case it.Electronics != nil && *it.Electronics != *other.Electronics:
		return false
	case (it.Grocery == nil) != (other.Grocery == nil):
		return false
	case it.Grocery != nil && *it.Grocery != *other.Grocery:
		return false
	}
	return true
}

// validate checks the item fields against the store invariants.
func (it Item) validate() error {
	if it.Name == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if it.Quantity < 0 {
		return fmt.Errorf("%w: quantity %d is negative", ErrInvalidInput, it.Quantity)
	}
	if it.Price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrInvalidInput, it.Price.Text())
	}
	switch it.Kind {
	case KindGeneric:
		if it.Electronics != nil || it.Grocery != nil {
			return fmt.Errorf("%w: generic item carries a kind payload", ErrInvalidInput)
		}
	case KindElectronics:
		if it.Electronics == nil || it.Grocery != nil {
			return fmt.Errorf("%w: electronics item needs an electronics payload", ErrInvalidInput)
		}
		if it.Electronics.WarrantyMonths < 0 {
			return fmt.Errorf("%w: warranty %d months is negative", ErrInvalidInput, it.Electronics.WarrantyMonths)
		}
	case KindGrocery:
		if it.Grocery == nil || it.Electronics != nil {
			return fmt.Errorf("%w: grocery item needs a grocery payload", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown item kind %q", ErrInvalidInput, it.Kind)
	}
	return nil
}
