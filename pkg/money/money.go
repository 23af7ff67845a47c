// Package money holds ledger amounts as signed 64-bit counts of minor units
// (cents). Amounts cross the API boundary as decimal numbers in major units.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the number of minor-unit digits in one major unit.
const Scale = 2

// Common money package errors
var (
	// ErrInvalidAmount is returned when a value cannot be read as a number
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTooPrecise is returned when a value has more than Scale decimal places
	ErrTooPrecise = errors.New("amount has more than 2 decimal places")
	// ErrOutOfRange is returned when a value does not fit in an Amount
	ErrOutOfRange = errors.New("amount out of range")
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Amount is a quantity of minor units.
type Amount int64

// FromDecimal converts a major-unit decimal into an Amount.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Shift(Scale)
	if !minor.IsInteger() {
		return 0, ErrTooPrecise
	}
	if minor.GreaterThan(maxAmount) || minor.LessThan(minAmount) {
		return 0, ErrOutOfRange
	}
	return Amount(minor.IntPart()), nil
}

// Parse reads a major-unit string such as "12.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromDecimal(d)
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Scale)
}

func (a Amount) IsPositive() bool { return a > 0 }

func (a Amount) String() string {
	return a.Decimal().StringFixed(Scale)
}

// MarshalJSON writes the amount as a bare major-unit number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().String()), nil
}

// UnmarshalJSON accepts a major-unit number or a quoted number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return ErrInvalidAmount
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
