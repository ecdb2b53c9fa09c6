// Package matcher resolves free-text price questions against a catalog
// snapshot. It is pure: given the same utterance and the same snapshot it
// always produces the same response, and it performs no I/O.
package matcher

import (
	"fmt"
	"strings"

	"github.com/solmarket/price-assistant/internal/app/catalog/domain"
	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
)

// Fixed responses. These strings are the contract with the Display/Voice
// boundary; they are displayed and spoken verbatim.
const (
	// PromptMessage is returned for an empty or whitespace-only question.
	PromptMessage = "Escribe o di el nombre del producto y si quieres 'mayorista' o 'venta'."

	// NotFoundMessage is returned when no product matches the question.
	NotFoundMessage = "No encontré ese producto. Revisa el nombre o agrégalo en el formulario."
)

// Resolve answers a price question against a name-sorted catalog snapshot.
//
// Matching runs in two passes. Pass A keeps every product whose full
// normalized name, or the first word of its name, appears inside the
// question. Only if pass A finds nothing, pass B splits the question into
// words and keeps every product whose name contains any one of them. In
// both passes candidates keep catalog order, so ambiguity resolves to the
// alphabetically first product rather than a relevance score.
func Resolve(rawQuery string, catalog []*dto.ProductDTO) string {
	q := strings.ToLower(strings.TrimSpace(rawQuery))
	if q == "" {
		return PromptMessage
	}

	candidates := substringPass(q, catalog)
	if len(candidates) == 0 {
		candidates = tokenPass(q, catalog)
	}
	if len(candidates) == 0 {
		return NotFoundMessage
	}

	return respond(q, candidates[0])
}

// substringPass keeps products whose normalized name (or its first word)
// is contained in the question.
func substringPass(q string, catalog []*dto.ProductDTO) []*dto.ProductDTO {
	var out []*dto.ProductDTO
	for _, p := range catalog {
		name := strings.ToLower(p.Name)
		words := strings.Fields(name)
		if strings.Contains(q, name) || (len(words) > 0 && strings.Contains(q, words[0])) {
			out = append(out, p)
		}
	}
	return out
}

// tokenPass keeps products whose normalized name contains any word of the
// question. The first matching word wins, so a product is never added twice.
func tokenPass(q string, catalog []*dto.ProductDTO) []*dto.ProductDTO {
	words := strings.Fields(q)
	var out []*dto.ProductDTO
	for _, p := range catalog {
		name := strings.ToLower(p.Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// respond picks the price field from the question. "mayorista" wins over
// "venta"/"precio"; a question naming neither gets both prices. Containment
// is plain substring search, consistent with the candidate passes.
func respond(q string, p *dto.ProductDTO) string {
	wholesale := domain.NewMoneyFromFloat(p.Wholesale).WholePesos()
	retail := domain.NewMoneyFromFloat(p.Retail).WholePesos()

	if strings.Contains(q, "mayorista") {
		return fmt.Sprintf("Mayorista de %s: %s pesos.", p.Name, wholesale)
	}
	if strings.Contains(q, "venta") || strings.Contains(q, "precio") {
		return fmt.Sprintf("Precio de venta de %s: %s pesos.", p.Name, retail)
	}
	return fmt.Sprintf("Precios de %s • Mayorista: %s • Venta: %s pesos.", p.Name, wholesale, retail)
}
