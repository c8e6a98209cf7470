// Package money provides the single internal representation for monetary
// values: an exact integer count of minor currency units (cents).
//
// No monetary value is ever held as a binary float at rest or in any
// arithmetic step. Conversion to and from decimal representations happens
// only at system boundaries, through Parse and String.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a boundary value cannot be converted
// into an exact cent count, or when a positive amount is required and the
// value is zero or negative.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is an exact amount in cents. The zero value is 0.00.
type Money struct {
	cents int64
}

// FromCents builds a Money from a raw cent count.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return m.cents
}

// Parse converts a decimal string into Money. Both dot (12.34) and comma
// (12,34) separators are accepted. A third fractional digit is rounded
// half away from zero; everything else is exact. Returns ErrInvalidAmount
// for non-numeric input or values that overflow the cent range.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	cents := d.Shift(2).Round(0)
	if !cents.BigInt().IsInt64() {
		return Money{}, ErrInvalidAmount
	}
	return Money{cents: cents.BigInt().Int64()}, nil
}

// ParsePositive is Parse restricted to strictly positive amounts, for
// budgets and transaction amounts.
func ParsePositive(s string) (Money, error) {
	m, err := Parse(s)
	if err != nil {
		return Money{}, err
	}
	if !m.IsPositive() {
		return Money{}, ErrInvalidAmount
	}
	return m, nil
}

// FromFloat converts a floating dollar amount by multiplying by 100 and
// rounding half away from zero. This is the only place floating point is
// allowed to touch money; callers should prefer Parse.
func FromFloat(f float64) Money {
	return Money{cents: int64(math.Round(f * 100))}
}

// String renders the amount as "<integer>.<two digits>", e.g. -10000 cents
// as "-100.00".
func (m Money) String() string {
	return decimal.New(m.cents, -2).StringFixed(2)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

// Compare returns -1, 0 or 1 as m is less than, equal to or greater than
// other.
func (m Money) Compare(other Money) int {
	switch {
	case m.cents < other.cents:
		return -1
	case m.cents > other.cents:
		return 1
	default:
		return 0
	}
}

// Equal reports whether m and other are the same cent count.
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Value stores the amount as a bare int64 so a persisted Money re-reads to
// an identical cent count.
func (m Money) Value() (driver.Value, error) {
	return m.cents, nil
}

// Scan reads the amount back from an int64 column.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		m.cents = v
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T into Money", src)
	}
}
