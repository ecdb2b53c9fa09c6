package assistant

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmarket/price-assistant/internal/app/catalog/domain"
	"github.com/solmarket/price-assistant/internal/app/catalog/dto"
	"github.com/solmarket/price-assistant/internal/app/catalog/queries/list_products"
	"github.com/solmarket/price-assistant/internal/app/catalog/repo"
	"github.com/solmarket/price-assistant/internal/app/catalog/usecases/save_product"
	"github.com/solmarket/price-assistant/internal/app/catalog/usecases/seed_catalog"
	"github.com/solmarket/price-assistant/internal/matcher"
	"github.com/solmarket/price-assistant/internal/pkg/clock"
	commitplan "github.com/solmarket/price-assistant/internal/pkg/committer"
	"github.com/solmarket/price-assistant/internal/voice"
)

type nopCommitter struct {
	applied int
}

func (c *nopCommitter) Apply(context.Context, *commitplan.Plan) error {
	c.applied++
	return nil
}

// memoryReadModel serves a fixed, name-sorted snapshot.
type memoryReadModel struct {
	products []*dto.ProductDTO
}

func (m *memoryReadModel) ListProducts(context.Context) ([]*dto.ProductDTO, error) {
	sorted := append([]*dto.ProductDTO(nil), m.products...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted, nil
}

func (m *memoryReadModel) CountProducts(context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func newTestFacade(products []*dto.ProductDTO, voiceOn bool) (*Facade, *nopCommitter) {
	cm := &nopCommitter{}
	rm := &memoryReadModel{products: products}
	clk := clock.NewFake(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	prodRepo := repo.NewProductRepo()
	outboxRepo := repo.NewOutboxRepo()

	f := New(
		save_product.NewInteractor(prodRepo, outboxRepo, cm, clk),
		seed_catalog.NewInteractor(prodRepo, outboxRepo, cm, rm, clk),
		list_products.NewHandler(rm),
		voice.NewState(voiceOn),
	)
	return f, cm
}

func TestAsk_DelegatesToMatcher(t *testing.T) {
	f, _ := newTestFacade([]*dto.ProductDTO{
		{Name: "Arroz 1kg", Wholesale: 3800, Retail: 5200},
	}, false)

	got, err := f.Ask(context.Background(), "mayorista de arroz 1kg")
	require.NoError(t, err)
	assert.Equal(t, "Mayorista de Arroz 1kg: 3800 pesos.", got)

	got, err = f.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, matcher.PromptMessage, got)

	got, err = f.Ask(context.Background(), "xyz-no-existe")
	require.NoError(t, err)
	assert.Equal(t, matcher.NotFoundMessage, got)
}

func TestSaveProduct_DelegatesToInteractor(t *testing.T) {
	f, cm := newTestFacade(nil, false)

	err := f.SaveProduct(context.Background(), "Queso 250g", "4000", "5500")
	require.NoError(t, err)
	assert.Equal(t, 1, cm.applied)

	err = f.SaveProduct(context.Background(), "Queso 250g", "-1", "5500")
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
	assert.Equal(t, 1, cm.applied, "invalid input must not reach the committer")
}

func TestListProducts_SortedByName(t *testing.T) {
	f, _ := newTestFacade([]*dto.ProductDTO{
		{Name: "Sal 1kg"},
		{Name: "Arroz 1kg"},
		{Name: "Leche 1L"},
	}, false)

	items, err := f.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Arroz 1kg", items[0].Name)
	assert.Equal(t, "Leche 1L", items[1].Name)
	assert.Equal(t, "Sal 1kg", items[2].Name)
}

func TestPromotion_NotEnoughProductsIsASuccessfulAnswer(t *testing.T) {
	f, _ := newTestFacade([]*dto.ProductDTO{{Name: "Arroz 1kg"}}, false)

	got, err := f.Promotion(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestToggleVoice_PureFlip(t *testing.T) {
	f, _ := newTestFacade(nil, true)

	assert.True(t, f.VoiceEnabled())
	assert.False(t, f.ToggleVoice())
	assert.False(t, f.VoiceEnabled())
	assert.True(t, f.ToggleVoice())
	assert.True(t, f.VoiceEnabled())
}

func TestInitialize_UsesRowCountGuard(t *testing.T) {
	f, cm := newTestFacade(nil, false)
	seeded, err := f.Initialize(context.Background())
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, 1, cm.applied)

	f2, cm2 := newTestFacade([]*dto.ProductDTO{{Name: "Arroz 1kg"}}, false)
	seeded, err = f2.Initialize(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, 0, cm2.applied)
}
