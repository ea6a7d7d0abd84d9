package inventory

import "errors"

// Sentinel errors returned by the Store, the Codec and the Tracker.
// Callers discriminate with errors.Is and decide whether to re-prompt
// or surface a terminal message; nothing in this package prints or exits.
var (
	// ErrInvalidInput is returned for a bad field value: negative
	// quantity or price, empty required string, malformed id.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when an operation references an id that
	// is not in the store.
	ErrNotFound = errors.New("item not found")

	// ErrNegativeStock is returned when a stock update would drive an
	// item's quantity below zero. The update is rejected and the
	// quantity left untouched.
	ErrNegativeStock = errors.New("insufficient stock")

	// ErrMalformedRecord marks an unparsable line in a persisted
	// inventory file.
	ErrMalformedRecord = errors.New("malformed record")
)
