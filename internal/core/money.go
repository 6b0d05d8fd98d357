// Package core holds the domain types shared by storage, reports and the
// CLI: money amounts, transaction records, account snapshots and the fixed
// expense taxonomy.
package core

import (
	"github.com/shopspring/decimal"
)

// Money is a currency amount stored as integer cents. Arithmetic on cents
// avoids the float drift of REAL columns; decimal conversion happens only
// at the parse/format edges.
type Money struct {
	Cents int64
}

// ParseMoney converts a decimal string ("12.34") to Money, rounding
// half-up past two decimal places. Negative amounts are rejected; zero is
// allowed so imports with a missing Amount column can default cleanly.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	return FromDecimal(d), nil
}

// FromDecimal converts a decimal amount to Money, rounding half-up to
// whole cents.
func FromDecimal(d decimal.Decimal) Money {
	return Money{Cents: d.Shift(2).Round(0).IntPart()}
}

// Decimal returns the amount as a two-decimal-place value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Sub returns the difference m - o. The result may be negative; budget
// variance and month-over-month deltas rely on that.
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Cents == 0
}

// PercentOf returns m as a percentage of base (m/base*100), or 0 when base
// is not positive.
func (m Money) PercentOf(base Money) float64 {
	if base.Cents <= 0 {
		return 0
	}
	return float64(m.Cents) / float64(base.Cents) * 100
}
