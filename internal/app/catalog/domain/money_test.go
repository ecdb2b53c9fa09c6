package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromDecimal(t *testing.T) {
	m, err := NewMoneyFromDecimal("3800")
	require.NoError(t, err)
	assert.Equal(t, "3800.00", m.String())

	m, err = NewMoneyFromDecimal("  3800.50 ")
	require.NoError(t, err)
	assert.Equal(t, "3800.50", m.String())
}

func TestNewMoneyFromDecimal_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "3.800,50", "12x"} {
		_, err := NewMoneyFromDecimal(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, "input %q", in)
	}
}

func TestNewMoneyFromDecimal_NegativeParsesButFailsValidation(t *testing.T) {
	m, err := NewMoneyFromDecimal("-1")
	require.NoError(t, err)
	assert.True(t, m.IsNegative())
	assert.ErrorIs(t, validatePrice(m), ErrNegativePrice)
}

func TestWholePesos_RoundsHalfUp(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{3800, 1, "3800"},
		{7601, 2, "3801"},  // 3800.5 rounds up
		{7599, 2, "3800"},  // 3799.5 rounds up to 3800
		{10499, 10, "1050"},
		{10494, 10, "1049"},
		{0, 1, "0"},
	}
	for _, c := range cases {
		got := NewMoney(c.num, c.den).WholePesos()
		assert.Equal(t, c.want, got, "%d/%d", c.num, c.den)
	}
}

func TestWholePesos_FloatRoundTrip(t *testing.T) {
	// Prices stored as FLOAT64 must reproduce exactly at 0 decimals.
	cases := []struct {
		f    float64
		want string
	}{
		{3800, "3800"},
		{5200, "5200"},
		{3500.5, "3501"},
		{3800.5, "3801"},
		{0.5, "1"},
		{11000, "11000"},
		{4200.5, "4201"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewMoneyFromFloat(c.f).WholePesos(), "%v", c.f)
	}
}

func TestMoneyEquals(t *testing.T) {
	assert.True(t, NewMoney(3800, 1).Equals(NewMoney(7600, 2)))
	assert.False(t, NewMoney(3800, 1).Equals(NewMoney(3801, 1)))
	assert.False(t, NewMoney(3800, 1).Equals(nil))
	assert.True(t, Zero().IsZero())
}
