package list_products

import (
	"context"

	contracts "github.com/solmarket/price-assistant/internal/app/catalog/contracts"
	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context) ([]*dto.ProductDTO, error) {
	return h.readModel.ListProducts(ctx)
}
