// Package money holds amounts as integer cents to keep nightly rates and
// stay totals exact.
package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Money struct {
	cents int64
}

func New(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulInt scales the amount by a whole factor (e.g. nights of a stay).
func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// MulPercent applies an integer percentage, truncating sub-cent remainders.
func (m Money) MulPercent(pct int64) Money {
	return Money{cents: m.cents * pct / 100}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) String() string {
	return fmt.Sprintf("$%.2f", m.Dollars())
}
