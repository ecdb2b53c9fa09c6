package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	now := time.Now().UTC()
	p, err := NewProduct("  Arroz 1kg ", NewMoney(3800, 1), NewMoney(5200, 1), now)
	require.NoError(t, err)

	assert.Equal(t, "Arroz 1kg", p.Name())
	assert.Equal(t, "arroz 1kg", p.Key())
	assert.Equal(t, "3800.00", p.Wholesale().String())
	assert.Equal(t, "5200.00", p.Retail().String())
	assert.Equal(t, now, p.CreatedAt())
	assert.Equal(t, now, p.UpdatedAt())

	events := p.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "product.saved", events[0].EventType())
	assert.Equal(t, "arroz 1kg", events[0].AggregateID())

	p.ClearEvents()
	assert.Empty(t, p.DomainEvents())
}

func TestNewProduct_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewProduct("", NewMoney(1, 1), NewMoney(1, 1), now)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct("   ", NewMoney(1, 1), NewMoney(1, 1), now)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct(strings.Repeat("x", 256), NewMoney(1, 1), NewMoney(1, 1), now)
	assert.ErrorIs(t, err, ErrProductNameTooLong)

	_, err = NewProduct("X", NewMoney(-1, 1), NewMoney(5, 1), now)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("X", NewMoney(5, 1), nil, now)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// Zero is a legal price; only negatives are rejected.
	_, err = NewProduct("X", Zero(), Zero(), now)
	assert.NoError(t, err)
}

func TestNameKey_CaseInsensitive(t *testing.T) {
	assert.Equal(t, NameKey("Arroz 1kg"), NameKey("arroz 1KG"))
	assert.Equal(t, "café 250g", NameKey("  Café 250g "))
}
