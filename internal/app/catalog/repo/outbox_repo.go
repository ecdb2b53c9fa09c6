package repo

import (
	"cloud.google.com/go/spanner"

	contracts "github.com/solmarket/price-assistant/internal/app/catalog/contracts"
	"github.com/solmarket/price-assistant/internal/models/m_catalog_event"
)

// OutboxRepo is the Spanner implementation of the catalog change-feed
// repository. It returns *spanner.Mutation but never applies it.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}

	values := m_catalog_event.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		e.Status,
		e.CreatedAtUTC,
	)
	return m_catalog_event.InsertMutation(values)
}
