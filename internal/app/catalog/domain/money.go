package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// The catalog store persists prices as numerator/denominator pairs; the query
// engine works on the float64 approximation.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(23990, 100) represents R$ 239.90
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}

	rat := big.NewRat(numerator, denominator)
	return &Money{rat: rat}, nil
}

// MoneyFromFloat rounds v to cents.
func MoneyFromFloat(v float64) (*Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("price must be finite")
	}
	return NewMoney(int64(math.Round(v*100)), 100)
}

// Numerator returns the numerator of the rational number.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the rational number.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// Float64 returns an approximate float64 representation.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns a string representation of the money value.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}
