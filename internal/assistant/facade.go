// Package assistant is the single entry point the Display/Voice boundary
// calls. It orchestrates the catalog store, the matcher and the promotion
// generator; it holds no catalog state of its own.
package assistant

import (
	"context"

	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
	"github.com/solmarket/price-assistant/internal/app/catalog/queries/list_products"
	"github.com/solmarket/price-assistant/internal/app/catalog/usecases/save_product"
	"github.com/solmarket/price-assistant/internal/app/catalog/usecases/seed_catalog"
	"github.com/solmarket/price-assistant/internal/matcher"
	"github.com/solmarket/price-assistant/internal/promo"
	"github.com/solmarket/price-assistant/internal/voice"
)

// Facade wires the catalog usecases and the list query behind the
// operations the boundary needs. Ask and Promotion re-fetch the snapshot
// on every call so edits are reflected immediately.
type Facade struct {
	save  *save_product.Interactor
	seed  *seed_catalog.Interactor
	list  *list_products.Handler
	voice *voice.State
}

func New(save *save_product.Interactor, seed *seed_catalog.Interactor, list *list_products.Handler, voiceState *voice.State) *Facade {
	return &Facade{
		save:  save,
		seed:  seed,
		list:  list,
		voice: voiceState,
	}
}

// Initialize seeds an empty store with the default catalog. Idempotent;
// called on every startup. Reports whether seeding happened.
func (f *Facade) Initialize(ctx context.Context) (bool, error) {
	return f.seed.Execute(ctx)
}

// Ask answers a free-text price question. "Not found" and "please type a
// product" are successful results carrying guidance text; only storage
// failures surface as errors.
func (f *Facade) Ask(ctx context.Context, rawQuery string) (string, error) {
	snapshot, err := f.list.Execute(ctx)
	if err != nil {
		return "", err
	}
	return matcher.Resolve(rawQuery, snapshot), nil
}

// SaveProduct inserts or replaces a product. Prices arrive as the raw
// strings from the form; validation errors come back typed from the
// interactor.
func (f *Facade) SaveProduct(ctx context.Context, name, wholesale, retail string) error {
	return f.save.Execute(ctx, save_product.Request{
		Name:      name,
		Wholesale: wholesale,
		Retail:    retail,
	})
}

// ListProducts returns the catalog sorted by name ascending.
func (f *Facade) ListProducts(ctx context.Context) ([]*dto.ProductDTO, error) {
	return f.list.Execute(ctx)
}

// Promotion builds the flat-rate bundle message over the current snapshot.
// "Not enough products" is a successful result.
func (f *Facade) Promotion(ctx context.Context) (string, error) {
	snapshot, err := f.list.Execute(ctx)
	if err != nil {
		return "", err
	}
	return promo.BuildPromotion(snapshot), nil
}

// ToggleVoice flips the voice flag and returns the new value. The flip is
// purely cosmetic; it never talks to the speech engine.
func (f *Facade) ToggleVoice() bool {
	return f.voice.Toggle()
}

// VoiceEnabled reports the current voice flag.
func (f *Facade) VoiceEnabled() bool {
	return f.voice.Enabled()
}
