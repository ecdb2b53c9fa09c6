package save_product

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/solmarket/price-assistant/internal/app/catalog/contracts"
	"github.com/solmarket/price-assistant/internal/app/catalog/domain"
	shared "github.com/solmarket/price-assistant/internal/app/catalog/usecases/shared"
	"github.com/solmarket/price-assistant/internal/pkg/clock"
	commitplan "github.com/solmarket/price-assistant/internal/pkg/committer"
)

// Request is the application-level save-product request. Prices arrive as
// the raw strings typed into the catalog form; parsing them here keeps the
// "must be a number" validation in one place.
type Request struct {
	Name      string
	Wholesale string
	Retail    string
}

// Interactor implements the save-product usecase. A save is always an
// insert-or-replace keyed on the case-insensitive product name.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

// Execute validates the request, persists the product and writes the change
// event in a single commit. The write is durable and visible to the next read.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Parse and validate prices
	wholesale, err := domain.NewMoneyFromDecimal(req.Wholesale)
	if err != nil {
		return err
	}
	retail, err := domain.NewMoneyFromDecimal(req.Retail)
	if err != nil {
		return err
	}

	// 2. Build domain aggregate (name and non-negativity validated here)
	product, err := domain.NewProduct(req.Name, wholesale, retail, now)
	if err != nil {
		return err
	}

	// 3. Build commit plan
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpsertMut(product))

	// 4. Add change-feed events (enriched)
	for _, ev := range product.DomainEvents() {
		payload, err := shared.MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       "pending",
			CreatedAtUTC: now,
		}))
	}

	// 5. Apply plan via Committer
	return it.Committer.Apply(ctx, plan)
}
