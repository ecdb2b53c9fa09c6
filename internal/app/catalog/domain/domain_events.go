package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductSavedEvent is raised when a product is inserted or replaced.
// Upserts keyed on the name do not distinguish create from overwrite, so
// a single event type covers both.
type ProductSavedEvent struct {
	Name      string
	Wholesale *Money
	Retail    *Money
	SavedAt   time.Time
}

func (e *ProductSavedEvent) EventType() string {
	return "product.saved"
}

func (e *ProductSavedEvent) AggregateID() string {
	return NameKey(e.Name)
}

func (e *ProductSavedEvent) OccurredAt() time.Time {
	return e.SavedAt
}

// CatalogSeededEvent is raised once, when an empty store is populated with
// the default product set.
type CatalogSeededEvent struct {
	ProductCount int
	SeededAt     time.Time
}

func (e *CatalogSeededEvent) EventType() string {
	return "catalog.seeded"
}

func (e *CatalogSeededEvent) AggregateID() string {
	return "catalog"
}

func (e *CatalogSeededEvent) OccurredAt() time.Time {
	return e.SeededAt
}
