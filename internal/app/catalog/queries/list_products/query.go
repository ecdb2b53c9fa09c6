package list_products

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
)

// SpannerListProductsQuery lists the full catalog ordered by name.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

// ListProducts returns every product sorted by name ascending. The ordering
// is load-bearing: the matcher's tie-break and the promotion bundle both
// take the first rows of this snapshot.
func (q *SpannerListProductsQuery) ListProducts(ctx context.Context) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT name, wholesale_price, retail_price, created_at, updated_at
		      FROM productos
		      ORDER BY name ASC`,
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.ProductDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			name                 string
			wholesale, retail    float64
			createdAt, updatedAt time.Time
		)
		if err := row.Columns(&name, &wholesale, &retail, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		c := createdAt.UTC().Format(time.RFC3339)
		u := updatedAt.UTC().Format(time.RFC3339)
		out = append(out, &dto.ProductDTO{
			Name:      name,
			Wholesale: wholesale,
			Retail:    retail,
			CreatedAt: &c,
			UpdatedAt: &u,
		})
	}
}
