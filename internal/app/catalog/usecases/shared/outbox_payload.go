package shared

import (
	"encoding/json"
	"fmt"

	"github.com/solmarket/price-assistant/internal/app/catalog/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload
// suitable for the catalog change feed.
//
// The domain layer intentionally avoids serialization concerns; this adapter
// extracts primitives (Money as a plain decimal string) to keep payloads
// useful to downstream readers.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.ProductSavedEvent:
		payload := map[string]interface{}{
			"name":            e.Name,
			"wholesale_price": e.Wholesale.FloatString(2),
			"retail_price":    e.Retail.FloatString(2),
			"saved_at":        e.SavedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.CatalogSeededEvent:
		payload := map[string]interface{}{
			"product_count": e.ProductCount,
			"seeded_at":     e.SeededAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
