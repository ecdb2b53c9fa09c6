package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
	"github.com/solmarket/price-assistant/internal/app/catalog/queries/count_products"
	"github.com/solmarket/price-assistant/internal/app/catalog/queries/list_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	listQ  *list_products.SpannerListProductsQuery
	countQ *count_products.SpannerCountProductsQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		listQ:  list_products.NewSpannerListProductsQuery(client),
		countQ: count_products.NewSpannerCountProductsQuery(client),
	}
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListProducts(ctx)
}

func (rm *SpannerReadModel) CountProducts(ctx context.Context) (int64, error) {
	return rm.countQ.CountProducts(ctx)
}
