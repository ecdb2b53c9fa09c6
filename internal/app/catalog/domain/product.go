package domain

import (
	"strings"
	"time"
)

// Product is the aggregate root for the price catalog domain.
// A product carries two price points: the wholesale price ("mayorista")
// offered to resellers and the retail price ("venta") offered over the
// counter.
type Product struct {
	name      string
	wholesale *Money
	retail    *Money
	createdAt time.Time
	updatedAt time.Time
	events    []DomainEvent
}

// NewProduct creates a new Product with the given details.
// The name is the catalog key; uniqueness is enforced case-insensitively
// by the store through NameKey.
func NewProduct(name string, wholesale, retail *Money, now time.Time) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(wholesale); err != nil {
		return nil, err
	}
	if err := validatePrice(retail); err != nil {
		return nil, err
	}

	p := &Product{
		name:      strings.TrimSpace(name),
		wholesale: wholesale,
		retail:    retail,
		createdAt: now,
		updatedAt: now,
		events:    make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductSavedEvent{
		Name:      p.name,
		Wholesale: p.wholesale,
		Retail:    p.retail,
		SavedAt:   now,
	})

	return p, nil
}

// NameKey returns the case-insensitive catalog key for a product name.
// The same normalization is applied on write and on lookup so that
// "Arroz 1kg" and "arroz 1KG" address the same row.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Getters

func (p *Product) Name() string {
	return p.name
}

// Key returns the persisted primary key for this product.
func (p *Product) Key() string {
	return NameKey(p.name)
}

func (p *Product) Wholesale() *Money {
	return p.wholesale
}

func (p *Product) Retail() *Money {
	return p.retail
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been published.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

// Validation helpers

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > 255 {
		return ErrProductNameTooLong
	}
	return nil
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrInvalidPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
