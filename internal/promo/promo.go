// Package promo derives the fixed-bundle promotional message from a
// catalog snapshot.
package promo

import (
	"fmt"
	"strings"

	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
)

const (
	// BundleSize is the number of products in the promotion bundle.
	BundleSize = 10

	// InsufficientMessage is returned while the catalog holds fewer than
	// BundleSize products.
	InsufficientMessage = "Aún no hay 10 productos para la promoción."
)

// BuildPromotion takes the first ten products of the name-sorted snapshot
// and offers them at a flat 100.000 pesos. The bundle price is a constant
// of the promotion, never a sum of the catalog prices.
func BuildPromotion(catalog []*dto.ProductDTO) string {
	if len(catalog) < BundleSize {
		return InsufficientMessage
	}

	names := make([]string, 0, BundleSize)
	for _, p := range catalog[:BundleSize] {
		names = append(names, p.Name)
	}
	return fmt.Sprintf("Promoción: 10 productos (%s) por 100.000 pesos.", strings.Join(names, ", "))
}
