// Package core provides the domain types shared by the ledger store,
// categorizer and services.
//
// Money is stored as integer cents to keep arithmetic exact; decimal
// conversion happens only at the parsing and formatting edges.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxParseableCents guards the cents conversion against int64 overflow.
var maxParseableCents = decimal.New(1<<62, -2)

// ParseAmount converts a decimal string entered by the user into Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and rounds
// half-up on the third decimal place. Zero, negative and malformed values are
// rejected with ErrInvalidAmount.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.LessThanOrEqual(decimal.Zero) || d.GreaterThan(maxParseableCents) {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0).IntPart()
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// Decimal returns the amount as an exact two-place decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// String formats the amount with two decimal places, e.g. "12.34".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns the difference of two amounts. The result may be negative,
// e.g. an overspent budget remainder.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}
