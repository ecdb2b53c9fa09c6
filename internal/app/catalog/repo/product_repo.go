package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/solmarket/price-assistant/internal/app/catalog/domain"
	"github.com/solmarket/price-assistant/internal/models/m_producto"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildUpsertValues constructs the values map used for the insert-or-replace.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildUpsertValues(p *domain.Product) map[string]interface{} {
	return m_producto.BuildUpsertMap(
		p.Key(),
		p.Name(),
		p.Wholesale().Float64(),
		p.Retail().Float64(),
		p.CreatedAt().UTC(),
		p.UpdatedAt().UTC(),
	)
}

// UpsertMut builds an InsertOrUpdate mutation keyed on the lowercased name,
// reproducing INSERT OR REPLACE semantics: a save with an existing name
// replaces both prices in place.
func (r *ProductRepo) UpsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_producto.UpsertMutation(buildUpsertValues(p))
}
