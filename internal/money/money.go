// Package money provides a fixed-point monetary amount stored in minor
// units (cents). All ledger arithmetic happens on integers so balances
// stay exact across any number of additions.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates a value that cannot be represented as money.
var ErrInvalidAmount = errors.New("invalid money amount")

// Amount is a monetary quantity in minor units of the working currency.
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

// FromMinor builds an Amount from a count of minor units.
func FromMinor(units int64) Amount {
	return Amount(units)
}

// FromFloat converts a major-unit float (e.g. 12.34) to an Amount,
// rounding to the nearest minor unit. Used only at boundaries where the
// value arrives as a float, such as LLM responses.
func FromFloat(v float64) (Amount, error) {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative value %v", ErrInvalidAmount, v)
	}
	return Amount(d.Shift(2).Round(0).IntPart()), nil
}

// Parse converts a decimal string (e.g. "1250.50") to an Amount.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount(d.Shift(2).Round(0).IntPart()), nil
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the amount as a major-unit decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return a + b }

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount { return a - b }

// Neg returns -a.
func (a Amount) Neg() Amount { return -a }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a == 0 }

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a < 0 }

// IsPositive reports whether the amount is above zero.
func (a Amount) IsPositive() bool { return a > 0 }

// Min returns the smaller of a and b.
func Min(a, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}

// String formats the amount in major units with two decimal places.
func (a Amount) String() string {
	return a.Decimal().String()
}

// MarshalJSON encodes the amount as a plain JSON number in major
// units, matching the persisted collection layout.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	*a = Amount(d.Shift(2).Round(0).IntPart())
	return nil
}
