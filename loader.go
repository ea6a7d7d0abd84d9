package inventory

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a persisted inventory file and hydrates a store from it.
// It returns the number of malformed lines that were skipped during
// decoding; callers must report a non-zero count to the user.
//
// A missing file is returned as-is so callers can test it with
// errors.Is(err, fs.ErrNotExist) and start with an empty store.
func Load(path string) (*Store, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	items, skipped, err := DecodeInventory(f)
	if err != nil {
		return nil, skipped, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	store, err := NewStoreOf(items)
	if err != nil {
		return nil, skipped, fmt.Errorf("inventory file %q is inconsistent: %w", path, err)
	}
	return store, skipped, nil
}

// Save persists the store to the given path as a whole-file rewrite.
//
// The new content is written to a temporary file in the target
// directory and renamed over the destination, so a failed write leaves
// the previous file untouched instead of truncating it.
func Save(path string, store *Store) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op once the rename has happened

	if err := EncodeInventory(tmp, store.Items()); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write inventory to %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not set permissions on %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace inventory file %q: %w", path, err)
	}
	return nil
}
