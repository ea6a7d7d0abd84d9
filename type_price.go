package inventory

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// priceCurrency is the currency prices are displayed in.
const priceCurrency = "USD"

// Price represents a unit price. It is backed by a decimal value so
// arithmetic and the persisted form stay exact.
type Price struct {
	value decimal.Decimal
}

// P builds a Price from any numeric value.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses the decimal string form of a price, as written by Text.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{value: d}, nil
}

func (p Price) Equal(q Price) bool { return p.value.Equal(q.value) }
func (p Price) IsZero() bool       { return p.value.IsZero() }
func (p Price) IsNegative() bool   { return p.value.IsNegative() }

// Text returns the canonical persisted form: a fixed two-digit decimal,
// so that encode/decode round-trips are stable.
func (p Price) Text() string { return p.value.StringFixed(2) }

// String returns the display form of the price, formatted for the
// price currency.
func (p Price) String() string {
	cur := money.GetCurrency(priceCurrency)
	minor := p.value.Shift(int32(cur.Fraction))
	return money.New(minor.Round(0).IntPart(), priceCurrency).Display()
}
