package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// Store owns the ordered collection of inventory items and the id
// allocation. Items keep their insertion order for listing; ids are
// strictly increasing and never reused, even after removal.
//
// The store hands out copies only: a snapshot returned by Items or
// Search is not altered by later mutations.
type Store struct {
	items  []Item
	nextID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// NewStoreOf creates a store hydrated from previously persisted items.
// Ids must be positive and unique; the id counter resumes above the
// highest id seen, so later additions never collide with loaded items.
func NewStoreOf(items []Item) (*Store, error) {
	s := NewStore()
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("%w: item %q has non-positive id %d", ErrInvalidInput, it.Name, it.ID)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %d", ErrInvalidInput, it.ID)
		}
		if err := it.validate(); err != nil {
			return nil, err
		}
		seen[it.ID] = struct{}{}
		s.items = append(s.items, it.clone())
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s, nil
}

// Len returns the number of items in the store.
func (s *Store) Len() int { return len(s.items) }

// Add adds an item to the store and returns its id.
//
// If an item with the same name already exists (exact, case-sensitive
// match), the new quantity is merged into the existing item and the
// existing id is returned with merged set: "add" never creates a second
// record for a known name. The existing item's price, category and kind
// payload are kept as they are.
func (s *Store) Add(it Item) (id int, merged bool, err error) {
	if it.Kind == "" {
		it.Kind = KindGeneric
	}
	if it.Category == "" {
		it.Category = DefaultCategory
	}
	if err := it.validate(); err != nil {
		return 0, false, err
	}
	for i := range s.items {
		if s.items[i].Name == it.Name {
			s.items[i].Quantity += it.Quantity
			return s.items[i].ID, true, nil
		}
	}
	it.ID = s.nextID
	s.nextID++
	s.items = append(s.items, it.clone())
	return it.ID, false, nil
}

// Remove deletes the item with the given id, preserving the order of
// the remaining items, and returns the removed item's name.
func (s *Store) Remove(id int) (name string, err error) {
	for i := range s.items {
		if s.items[i].ID == id {
			name = s.items[i].Name
			s.items = append(s.items[:i], s.items[i+1:]...)
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// UpdateStock applies a signed quantity delta to the item with the
// given id and returns the new quantity. An update that would drive the
// quantity below zero is rejected with ErrNegativeStock and leaves the
// item untouched.
func (s *Store) UpdateStock(id, delta int) (newQuantity int, err error) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		q := s.items[i].Quantity + delta
		if q < 0 {
			return s.items[i].Quantity, fmt.Errorf("%w: %d on hand, cannot remove %d", ErrNegativeStock, s.items[i].Quantity, -delta)
		}
		s.items[i].Quantity = q
		return q, nil
	}
	return 0, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// FindByID returns a copy of the item with the given id.
func (s *Store) FindByID(id int) (Item, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return s.items[i].clone(), true
		}
	}
	return Item{}, false
}

// Items returns a snapshot of all items in insertion order. An empty
// store yields an empty snapshot, which is not an error.
func (s *Store) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for i := range s.items {
		out = append(out, s.items[i].clone())
	}
	return out
}

// Search returns a snapshot of the items matching the query, in
// insertion order. The match is a case-insensitive substring test
// against name and category; if the query is all digits it also matches
// the item whose id has exactly that decimal form, even when the digits
// are no substring of the name. An empty query is an error, not an
// empty result.
func (s *Store) Search(query string) ([]Item, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidInput)
	}
	byID := -1
	// Exact decimal form only: "007" is not the id 7.
	if id, err := strconv.Atoi(query); err == nil && strconv.Itoa(id) == query && id > 0 {
		byID = id
	}
	q := strings.ToLower(query)
	var out []Item
	for i := range s.items {
		it := &s.items[i]
		if it.ID == byID ||
			strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, it.clone())
		}
	}
	return out, nil
}

// LowStock returns a snapshot of the items whose quantity is strictly
// below the threshold, in insertion order.
func (s *Store) LowStock(threshold int) []Item {
	var out []Item
	for i := range s.items {
		if s.items[i].Quantity < threshold {
			out = append(out, s.items[i].clone())
		}
	}
	return out
}
