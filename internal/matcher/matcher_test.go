package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
)

// seededCatalog mirrors the default seed set, already sorted by name the
// way the read model returns it.
func seededCatalog() []*dto.ProductDTO {
	return []*dto.ProductDTO{
		{Name: "Aceite 1L", Wholesale: 7800, Retail: 9800},
		{Name: "Arroz 1kg", Wholesale: 3800, Retail: 5200},
		{Name: "Azúcar 1kg", Wholesale: 3500, Retail: 4800},
		{Name: "Café 250g", Wholesale: 9000, Retail: 12000},
		{Name: "Frijol 1kg", Wholesale: 4500, Retail: 6000},
		{Name: "Harina 1kg", Wholesale: 3000, Retail: 4200},
		{Name: "Huevos docena", Wholesale: 8000, Retail: 11000},
		{Name: "Leche 1L", Wholesale: 2500, Retail: 3500},
		{Name: "Pan 500g", Wholesale: 2500, Retail: 3500},
		{Name: "Pasta 500g", Wholesale: 4000, Retail: 5500},
		{Name: "Sal 1kg", Wholesale: 2000, Retail: 3000},
	}
}

func TestResolve_EmptyQueryReturnsPrompt(t *testing.T) {
	assert.Equal(t, PromptMessage, Resolve("", seededCatalog()))
	assert.Equal(t, PromptMessage, Resolve("   \t ", seededCatalog()))
}

func TestResolve_WholesaleQuestion(t *testing.T) {
	got := Resolve("mayorista de arroz 1kg", seededCatalog())
	assert.Equal(t, "Mayorista de Arroz 1kg: 3800 pesos.", got)
}

func TestResolve_RetailQuestion(t *testing.T) {
	got := Resolve("venta de leche", seededCatalog())
	assert.Equal(t, "Precio de venta de Leche 1L: 3500 pesos.", got)
}

func TestResolve_PrecioAlsoSelectsRetail(t *testing.T) {
	got := Resolve("precio de pan", seededCatalog())
	assert.Equal(t, "Precio de venta de Pan 500g: 3500 pesos.", got)
}

func TestResolve_NoPriceKindReturnsBoth(t *testing.T) {
	got := Resolve("cuánto vale el café", seededCatalog())
	assert.Equal(t, "Precios de Café 250g • Mayorista: 9000 • Venta: 12000 pesos.", got)
}

func TestResolve_UnknownProductReturnsNotFound(t *testing.T) {
	assert.Equal(t, NotFoundMessage, Resolve("xyz-no-existe", seededCatalog()))
}

func TestResolve_CaseInsensitive(t *testing.T) {
	got := Resolve("MAYORISTA DE ARROZ 1KG", seededCatalog())
	assert.Equal(t, "Mayorista de Arroz 1kg: 3800 pesos.", got)
}

// A question naming two products keeps both as candidates; the first one
// in name-sorted order wins, never a relevance score.
func TestResolve_TieBreaksAlphabetically(t *testing.T) {
	catalog := []*dto.ProductDTO{
		{Name: "Pan 500g", Wholesale: 2500, Retail: 3500},
		{Name: "Pasta 500g", Wholesale: 4000, Retail: 5500},
	}
	got := Resolve("venta de pan y pasta", catalog)
	assert.Equal(t, "Precio de venta de Pan 500g: 3500 pesos.", got)
}

// "huevos" appears as a word of the question but the product's full name
// ("Huevos docena") is not contained in it; the first word of the name is,
// so the substring pass already catches it.
func TestResolve_FirstWordOfNameMatches(t *testing.T) {
	got := Resolve("mayorista de huevos", seededCatalog())
	assert.Equal(t, "Mayorista de Huevos docena: 8000 pesos.", got)
}

// The token pass only runs when the substring pass found nothing: a query
// word contained inside a product name ("zúcar" inside "azúcar 1kg")
// still resolves.
func TestResolve_TokenPassFallback(t *testing.T) {
	got := Resolve("venta zúcar", seededCatalog())
	assert.Equal(t, "Precio de venta de Azúcar 1kg: 4800 pesos.", got)
}

func TestResolve_RoundsHalfUp(t *testing.T) {
	catalog := []*dto.ProductDTO{
		{Name: "Queso 250g", Wholesale: 4200.5, Retail: 5999.4},
	}
	got := Resolve("queso", catalog)
	assert.Equal(t, "Precios de Queso 250g • Mayorista: 4201 • Venta: 5999 pesos.", got)
}

func TestResolve_ExtraneousWordsIgnored(t *testing.T) {
	got := Resolve("hola me dices el mayorista de sal 1kg por favor", seededCatalog())
	assert.Equal(t, "Mayorista de Sal 1kg: 2000 pesos.", got)
}
