package contracts

import (
	"cloud.google.com/go/spanner"

	domain "github.com/solmarket/price-assistant/internal/app/catalog/domain"
)

// ProductRepo is the write-side repository interface for products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// UpsertMut returns a mutation that inserts the product or replaces the
	// existing row sharing the same case-insensitive name key (or nil if none).
	UpsertMut(p *domain.Product) *spanner.Mutation
}
