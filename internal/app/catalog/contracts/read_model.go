package contracts

import (
	"context"

	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
)

// ReadModel is the read-side interface over the catalog. Every method
// returns a fresh snapshot; callers never observe cached state.
type ReadModel interface {
	// ListProducts returns all products ordered by name ascending.
	ListProducts(ctx context.Context) ([]*dto.ProductDTO, error)

	// CountProducts returns the number of rows in the catalog.
	// Used as the seed guard on startup.
	CountProducts(ctx context.Context) (int64, error)
}
