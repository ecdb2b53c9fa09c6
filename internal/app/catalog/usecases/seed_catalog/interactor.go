package seed_catalog

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/solmarket/price-assistant/internal/app/catalog/contracts"
	"github.com/solmarket/price-assistant/internal/app/catalog/domain"
	shared "github.com/solmarket/price-assistant/internal/app/catalog/usecases/shared"
	"github.com/solmarket/price-assistant/internal/pkg/clock"
	commitplan "github.com/solmarket/price-assistant/internal/pkg/committer"
)

// seedProduct is one default catalog entry: name, wholesale, retail pesos.
type seedProduct struct {
	name      string
	wholesale int64
	retail    int64
}

// defaultCatalog is the fixed starter set. Eleven entries so the ten-item
// promotion bundle always has enough products on a fresh store.
var defaultCatalog = []seedProduct{
	{"Arroz 1kg", 3800, 5200},
	{"Aceite 1L", 7800, 9800},
	{"Azúcar 1kg", 3500, 4800},
	{"Sal 1kg", 2000, 3000},
	{"Leche 1L", 2500, 3500},
	{"Huevos docena", 8000, 11000},
	{"Pan 500g", 2500, 3500},
	{"Café 250g", 9000, 12000},
	{"Pasta 500g", 4000, 5500},
	{"Frijol 1kg", 4500, 6000},
	{"Harina 1kg", 3000, 4200},
}

// Interactor populates an empty store with the default product set.
// Safe to run on every startup: a row-count guard makes it a no-op once
// the catalog has any rows, so repeated calls never duplicate seed data.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

// Execute seeds the catalog if and only if it is empty. It reports whether
// seeding happened.
func (it *Interactor) Execute(ctx context.Context) (bool, error) {
	count, err := it.ReadModel.CountProducts(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := it.Clock.Now()
	plan := commitplan.NewPlan()

	for _, s := range defaultCatalog {
		product, err := domain.NewProduct(
			s.name,
			domain.NewMoney(s.wholesale, 1),
			domain.NewMoney(s.retail, 1),
			now,
		)
		if err != nil {
			return false, err
		}
		plan.Add(it.ProductRepo.UpsertMut(product))
	}

	seeded := &domain.CatalogSeededEvent{ProductCount: len(defaultCatalog), SeededAt: now}
	payload, err := shared.MarshalDomainEventPayload(seeded)
	if err != nil {
		return false, err
	}
	plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
		EventID:      uuid.New().String(),
		EventType:    seeded.EventType(),
		AggregateID:  seeded.AggregateID(),
		PayloadJSON:  payload,
		Status:       "pending",
		CreatedAtUTC: now,
	}))

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return false, err
	}
	return true, nil
}

// SeedSize returns the number of products in the default set.
func SeedSize() int {
	return len(defaultCatalog)
}
