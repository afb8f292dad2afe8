package taste

import (
	"context"
	"testing"

	"applianceReco/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigStore struct {
	cfg       *domain.TasteConfig
	matched   *domain.TasteConfig
	lastKey   RepresentativeKey
	getCalled int
}

func (f *fakeConfigStore) GetByTasteID(ctx context.Context, tasteID int) (*domain.TasteConfig, error) {
	f.getCalled++
	return f.cfg, nil
}

func (f *fakeConfigStore) FindByRepresentative(ctx context.Context, key RepresentativeKey) (*domain.TasteConfig, error) {
	f.lastKey = key
	return f.matched, nil
}

type fakeProductRepo struct {
	products []domain.Product
	lastIDs  []string
}

func (f *fakeProductRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	f.lastIDs = ids
	return f.products, nil
}

func storedConfig(t *testing.T) *domain.TasteConfig {
	t.Helper()
	cfg := &domain.TasteConfig{TasteID: 7}
	require.NoError(t, cfg.SetCategoryScores(map[string]float64{"TV": 85, "냉장고": 70}))
	require.NoError(t, cfg.SetSelectedCategories([]string{"TV", "냉장고"}))
	require.NoError(t, cfg.SetRecommendedProducts(map[string][]string{
		"TV":  {"p1", "p2", "p3"},
		"냉장고": {"f1"},
	}))
	require.NoError(t, cfg.SetRecommendedProductScores(map[string][]int{
		"TV":  {95, 90, 80},
		"냉장고": {88},
	}))
	return cfg
}

func newTestService(store TasteConfigStore, products ProductRepository, cfg Config) *TasteService {
	return NewTasteService(DefaultRegistry(), DefaultSelector(), NewHardFilter(750, 24), store, products, cfg)
}

func studioRaw() map[string]any {
	return map[string]any{
		"vibe":           "modern",
		"household_size": 1,
		"housing_type":   "studio",
		"pyung":          15,
		"main_space":     []string{"living"},
		"cooking":        "rarely",
		"media":          "minimal",
		"priority":       []string{"design"},
		"budget_level":   "low",
	}
}

func TestRecommendRevalidatesAgainstLiveCatalog(t *testing.T) {
	store := &fakeConfigStore{cfg: storedConfig(t)}
	products := &fakeProductRepo{products: []domain.Product{
		{ProductID: "p1", DepthMM: "600mm"},
		{ProductID: "p2", DepthMM: "900mm"}, // too deep for a studio
		{ProductID: "p3", DepthMM: "700mm"},
		{ProductID: "f1", DepthMM: "650mm"},
	}}
	svc := newTestService(store, products, Config{TopProducts: 3, Revalidate: true})

	rec, err := svc.Recommend(context.Background(), studioRaw())
	require.NoError(t, err)
	require.Len(t, rec.Categories, 2)

	tv := rec.Categories[0]
	assert.Equal(t, "TV", tv.Category)
	assert.Equal(t, []domain.ScoredProduct{
		{ProductID: "p1", Score: 95},
		{ProductID: "p3", Score: 80},
	}, tv.Products)

	fridge := rec.Categories[1]
	assert.Equal(t, "냉장고", fridge.Category)
	assert.Equal(t, []domain.ScoredProduct{{ProductID: "f1", Score: 88}}, fridge.Products)
}

func TestRecommendTopProductsCap(t *testing.T) {
	store := &fakeConfigStore{cfg: storedConfig(t)}
	products := &fakeProductRepo{products: []domain.Product{
		{ProductID: "p1"}, {ProductID: "p2"}, {ProductID: "p3"}, {ProductID: "f1"},
	}}
	svc := newTestService(store, products, Config{TopProducts: 2, Revalidate: true})

	rec, err := svc.Recommend(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Len(t, rec.Categories[0].Products, 2)
}

func TestRecommendDropsMissingCatalogRows(t *testing.T) {
	store := &fakeConfigStore{cfg: storedConfig(t)}
	// p2 vanished from the catalog entirely
	products := &fakeProductRepo{products: []domain.Product{
		{ProductID: "p1"}, {ProductID: "p3"}, {ProductID: "f1"},
	}}
	svc := newTestService(store, products, Config{TopProducts: 3, Revalidate: true})

	rec, err := svc.Recommend(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []domain.ScoredProduct{
		{ProductID: "p1", Score: 95},
		{ProductID: "p3", Score: 80},
	}, rec.Categories[0].Products)
}

func TestRecommendWithoutRevalidation(t *testing.T) {
	store := &fakeConfigStore{cfg: storedConfig(t)}
	products := &fakeProductRepo{}
	svc := newTestService(store, products, Config{TopProducts: 3, Revalidate: false})

	rec, err := svc.Recommend(context.Background(), studioRaw())
	require.NoError(t, err)
	assert.Nil(t, products.lastIDs, "catalog untouched when revalidation is off")
	assert.Len(t, rec.Categories[0].Products, 3)
}

func TestRecommendMissingConfig(t *testing.T) {
	svc := newTestService(&fakeConfigStore{}, &fakeProductRepo{}, DefaultConfig())

	_, err := svc.Recommend(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, domain.ErrTasteConfigMissing)
}

func TestRecommendInvalidInput(t *testing.T) {
	svc := newTestService(&fakeConfigStore{cfg: storedConfig(t)}, &fakeProductRepo{}, DefaultConfig())

	_, err := svc.Recommend(context.Background(), map[string]any{"vibe": "brutalist"})
	assert.ErrorIs(t, err, domain.ErrInvalidOnboardingInput)
}

func TestGetTasteConfigRange(t *testing.T) {
	svc := newTestService(&fakeConfigStore{cfg: storedConfig(t)}, &fakeProductRepo{}, DefaultConfig())

	_, err := svc.GetTasteConfig(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrTasteConfigMissing)
	_, err = svc.GetTasteConfig(context.Background(), TasteCount+1)
	assert.ErrorIs(t, err, domain.ErrTasteConfigMissing)

	cfg, err := svc.GetTasteConfig(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TasteID)
}

func TestMatchTasteBuildsKeyFromVector(t *testing.T) {
	store := &fakeConfigStore{matched: storedConfig(t)}
	svc := newTestService(store, &fakeProductRepo{}, DefaultConfig())

	cfg, err := svc.MatchTaste(context.Background(), studioRaw())
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TasteID)

	assert.Equal(t, "modern", store.lastKey.Vibe)
	assert.Equal(t, 1, store.lastKey.HouseholdSize)
	assert.Equal(t, "studio", store.lastKey.HousingType)
	assert.Equal(t, "design", store.lastKey.Priority)
	assert.Equal(t, "low", store.lastKey.BudgetLevel)
	assert.Equal(t, "living", store.lastKey.MainSpace)
}

func TestDebugReport(t *testing.T) {
	svc := newTestService(&fakeConfigStore{}, &fakeProductRepo{}, DefaultConfig())

	report, err := svc.Debug(context.Background(), studioRaw())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, report.TasteID, 1)
	assert.LessOrEqual(t, report.TasteID, TasteCount)
	assert.NotEmpty(t, report.CategoryScores)
	assert.NotEmpty(t, report.Selected)
	assert.Contains(t, report.IllSuitedReasons, "건조기")
	assert.Zero(t, report.CategoryScores["건조기"])
}
