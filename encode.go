package inventory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fbatier/inventory/date"
)

// The persisted inventory format is plain UTF-8 text, one item per
// line, fields joined by a comma. The common fields come first, in a
// fixed order, followed by the kind-specific fields:
//
//	id,kind,name,price,quantity,category[,kind specific fields...]
//
// Electronics append brand and warranty months, groceries append the
// expiry date. Prices are written with a fixed two-digit precision so
// that encode/decode round-trips are stable. Names must not contain a
// comma; the façade rejects them before they reach the store.
const (
	fieldSeparator = ","

	// formatHeader marks the file format version. Decoding tolerates
	// its absence so files written before the marker existed still load.
	formatHeader = "#inventory v1"
)

// EncodeInventory writes the items to w, one line per item, preceded by
// the format header.
func EncodeInventory(w io.Writer, items []Item) error {
	if _, err := fmt.Fprintln(w, formatHeader); err != nil {
		return fmt.Errorf("could not write inventory header: %w", err)
	}
	for _, it := range items {
		fields := []string{
			strconv.Itoa(it.ID),
			string(it.Kind),
			it.Name,
			it.Price.Text(),
			strconv.Itoa(it.Quantity),
			it.Category,
		}
		switch it.Kind {
		case KindElectronics:
			fields = append(fields, it.Electronics.Brand, strconv.Itoa(it.Electronics.WarrantyMonths))
		case KindGrocery:
			fields = append(fields, it.Grocery.Expiry.String())
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, fieldSeparator)); err != nil {
			return fmt.Errorf("could not write item %d: %w", it.ID, err)
		}
	}
	return nil
}

// DecodeInventory reads items from a persisted inventory stream.
//
// Decoding is best effort: a malformed line does not lose the rest of
// the file. Skipped lines are counted and reported to the caller, which
// must surface the count rather than swallow it.
func DecodeInventory(r io.Reader) (items []Item, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		it, err := decodeItemLine(line)
		if err != nil {
			skipped++
			continue
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("error reading inventory: %w", err)
	}
	return items, skipped, nil
}

// decodeItemLine parses a single record line. Every parse failure is an
// ErrMalformedRecord so callers can treat them uniformly.
func decodeItemLine(line string) (Item, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 5 {
		return Item{}, fmt.Errorf("%w: want at least 5 fields, got %d", ErrMalformedRecord, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		return Item{}, fmt.Errorf("%w: bad id %q", ErrMalformedRecord, fields[0])
	}
	kind, err := ParseKind(fields[1])
	if err != nil {
		return Item{}, fmt.Errorf("%w: bad kind %q", ErrMalformedRecord, fields[1])
	}
	name := fields[2]
	if name == "" {
		return Item{}, fmt.Errorf("%w: empty name", ErrMalformedRecord)
	}
	price, err := ParsePrice(fields[3])
	if err != nil || price.IsNegative() {
		return Item{}, fmt.Errorf("%w: bad price %q", ErrMalformedRecord, fields[3])
	}
	quantity, err := strconv.Atoi(fields[4])
	if err != nil || quantity < 0 {
		return Item{}, fmt.Errorf("%w: bad quantity %q", ErrMalformedRecord, fields[4])
	}
	// Category was not always persisted; default it for legacy records.
	category := DefaultCategory
	if len(fields) >= 6 && fields[5] != "" {
		category = fields[5]
	}

	it := Item{ID: id, Kind: kind, Name: name, Price: price, Quantity: quantity, Category: category}
	switch kind {
	case KindGeneric:
		if len(fields) > 6 {
			return Item{}, fmt.Errorf("%w: %d trailing fields on a generic item", ErrMalformedRecord, len(fields)-6)
		}
	case KindElectronics:
		if len(fields) != 8 {
			return Item{}, fmt.Errorf("%w: electronics record wants 8 fields, got %d", ErrMalformedRecord, len(fields))
		}
		warranty, err := strconv.Atoi(fields[7])
		if err != nil || warranty < 0 {
			return Item{}, fmt.Errorf("%w: bad warranty %q", ErrMalformedRecord, fields[7])
		}
		it.Electronics = &ElectronicsInfo{Brand: fields[6], WarrantyMonths: warranty}
	case KindGrocery:
		if len(fields) != 7 {
			return Item{}, fmt.Errorf("%w: grocery record wants 7 fields, got %d", ErrMalformedRecord, len(fields))
		}
		expiry, err := date.Parse(fields[6])
		if err != nil {
			return Item{}, fmt.Errorf("%w: bad expiry %q", ErrMalformedRecord, fields[6])
		}
		it.Grocery = &GroceryInfo{Expiry: expiry}
	}
	return it, nil
}
