package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally to avoid floating-point precision issues.
// Money is immutable - all operations return new instances.
type Money struct {
	amount *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// For example: NewMoney(3800, 1) represents 3800 pesos.
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{
		amount: big.NewRat(numerator, denominator),
	}
}

// NewMoneyFromDecimal creates Money from a decimal string as entered in
// the catalog form. For example: "3800", "3800.50".
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	s := strings.TrimSpace(decimal)
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidPrice)
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(s); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromFloat creates Money from a float64, as read back from the
// FLOAT64 price columns.
func NewMoneyFromFloat(f float64) *Money {
	rat := new(big.Rat).SetFloat64(f)
	if rat == nil {
		rat = big.NewRat(0, 1)
	}
	return &Money{amount: rat}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: big.NewRat(0, 1)}
}

// IsZero returns true if the money amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsNegative returns true if the money amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Rat returns a copy of the internal big.Rat.
// The returned value is a copy to maintain immutability.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// Float64 returns the money amount as a float64.
// Used for persistence into the FLOAT64 price columns and for display.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// WholePesos returns the amount rounded to 0 decimal places as a string.
// Rounding is half-up: 3800.5 renders as "3801". Prices are validated
// non-negative before they reach display, so floor(x + 1/2) is exact.
func (m *Money) WholePesos() string {
	shifted := new(big.Rat).Add(m.amount, big.NewRat(1, 2))
	whole := new(big.Int).Quo(shifted.Num(), shifted.Denom())
	return whole.String()
}

// FloatString returns a decimal string representation with the specified
// precision. For example: FloatString(2) returns "3800.00".
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}

// String returns the amount with two decimal places.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}
