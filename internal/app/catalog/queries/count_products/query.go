package count_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

// SpannerCountProductsQuery counts catalog rows. The seed usecase uses the
// count as its idempotence guard instead of re-running inserts blindly.
type SpannerCountProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerCountProductsQuery(client *spanner.Client) *SpannerCountProductsQuery {
	return &SpannerCountProductsQuery{Client: client}
}

func (q *SpannerCountProductsQuery) CountProducts(ctx context.Context) (int64, error) {
	stmt := spanner.Statement{SQL: `SELECT COUNT(*) FROM productos`}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, err
	}
	return n, nil
}
