package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Tracker is the validated operation surface between the presentation
// layer and the store. It trims and checks raw field values before
// delegating, and keeps the on-disk copy consistent with memory by
// saving after every mutating call (write-through, not batched).
//
// A tracker with an empty path is a pure in-memory session: nothing is
// ever persisted.
type Tracker struct {
	store *Store
	path  string
}

// NewTracker wraps an existing store. Pass an empty path for an
// in-memory session.
func NewTracker(store *Store, path string) *Tracker {
	return &Tracker{store: store, path: path}
}

// OpenTracker loads the inventory file at path, starting with an empty
// store when the file does not exist yet. It returns the number of
// malformed lines skipped during the load.
func OpenTracker(path string) (*Tracker, int, error) {
	store, skipped, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewTracker(NewStore(), path), 0, nil
	}
	if err != nil {
		return nil, skipped, err
	}
	return NewTracker(store, path), skipped, nil
}

// AddItem validates the raw item and adds it to the store. It returns
// the item id and whether the quantity was merged into an existing item
// of the same name.
func (t *Tracker) AddItem(it Item) (id int, merged bool, err error) {
	it = it.clone() // trimming must not reach the caller's payload
	it.Name = strings.TrimSpace(it.Name)
	it.Category = strings.TrimSpace(it.Category)
	if it.Electronics != nil {
		it.Electronics.Brand = strings.TrimSpace(it.Electronics.Brand)
	}
	if it.Name == "" {
		return 0, false, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	for _, field := range []string{it.Name, it.Category, brandOf(it)} {
		if strings.Contains(field, fieldSeparator) {
			return 0, false, fmt.Errorf("%w: %q must not contain %q", ErrInvalidInput, field, fieldSeparator)
		}
	}
	if it.Kind == KindGrocery && (it.Grocery == nil || it.Grocery.Expiry.IsZero()) {
		return 0, false, fmt.Errorf("%w: grocery item needs an expiry date", ErrInvalidInput)
	}

	id, merged, err = t.store.Add(it)
	if err != nil {
		return 0, false, err
	}
	return id, merged, t.flush()
}

// RemoveItem deletes the item with the given id and returns its name
// for confirmation messaging.
func (t *Tracker) RemoveItem(id int) (name string, err error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: id must be positive, got %d", ErrInvalidInput, id)
	}
	name, err = t.store.Remove(id)
	if err != nil {
		return "", err
	}
	return name, t.flush()
}

// UpdateStock applies a signed quantity delta and returns the new
// quantity. Updates that would drive the quantity negative are rejected.
func (t *Tracker) UpdateStock(id, delta int) (newQuantity int, err error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidInput, id)
	}
	newQuantity, err = t.store.UpdateStock(id, delta)
	if err != nil {
		return newQuantity, err
	}
	return newQuantity, t.flush()
}

// Item returns a copy of the item with the given id.
func (t *Tracker) Item(id int) (Item, error) {
	it, ok := t.store.FindByID(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return it, nil
}

// ListItems returns a snapshot of the whole inventory in insertion order.
func (t *Tracker) ListItems() []Item {
	return t.store.Items()
}

// Search returns the items matching the trimmed query.
func (t *Tracker) Search(query string) ([]Item, error) {
	return t.store.Search(strings.TrimSpace(query))
}

// LowStock returns the items whose quantity is below the threshold.
func (t *Tracker) LowStock(threshold int) ([]Item, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must not be negative, got %d", ErrInvalidInput, threshold)
	}
	return t.store.LowStock(threshold), nil
}

// Flush persists the current state, even without a preceding mutation.
func (t *Tracker) Flush() error {
	if t.path == "" {
		return nil
	}
	return Save(t.path, t.store)
}

func (t *Tracker) flush() error { return t.Flush() }

func brandOf(it Item) string {
	if it.Electronics == nil {
		return ""
	}
	return it.Electronics.Brand
}
