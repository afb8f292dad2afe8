package builder

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"applianceReco/business/taste"
	"applianceReco/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memConfigStore struct {
	mu       sync.Mutex
	rows     map[int]*domain.TasteConfig
	failOn   map[int]bool
	upserted int
}

func newMemConfigStore() *memConfigStore {
	return &memConfigStore{rows: map[int]*domain.TasteConfig{}, failOn: map[int]bool{}}
}

func (s *memConfigStore) GetByTasteID(ctx context.Context, tasteID int) (*domain.TasteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.rows[tasteID]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, nil
}

func (s *memConfigStore) Upsert(ctx context.Context, cfg *domain.TasteConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn[cfg.TasteID] {
		return fmt.Errorf("%w: boom", domain.ErrStore)
	}
	cp := *cfg
	s.rows[cfg.TasteID] = &cp
	s.upserted++
	return nil
}

type stubScorer struct {
	mu       sync.Mutex
	failCat  string
	failures int
}

func (s *stubScorer) ScoreProducts(ctx context.Context, tasteID int, category string, limit int) ([]domain.ScoredProduct, error) {
	if category == s.failCat {
		s.mu.Lock()
		s.failures++
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: scorer down", domain.ErrExternalScorer)
	}
	out := make([]domain.ScoredProduct, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, domain.ScoredProduct{
			ProductID: fmt.Sprintf("%s-%d-%d", category, tasteID, i),
			Score:     100 - i*5,
		})
	}
	return out, nil
}

func newTestBuilder(store ConfigStore, scorer ProductScorer, force bool) *Builder {
	return NewBuilder(taste.DefaultRegistry(), taste.DefaultSelector(), store, scorer, Options{
		Force:       force,
		Concurrency: 4,
		TopProducts: 3,
		ScoreLimit:  10,
	})
}

func TestBuildRangeFresh(t *testing.T) {
	store := newMemConfigStore()
	b := newTestBuilder(store, &stubScorer{}, false)

	summary, err := b.BuildRange(context.Background(), 1, 20)
	require.NoError(t, err)

	assert.Equal(t, 20, summary.Built)
	assert.Zero(t, summary.Updated)
	assert.Zero(t, summary.Skipped)
	assert.Zero(t, summary.Failed)
	assert.NotEmpty(t, summary.RunID)
	require.Len(t, store.rows, 20)

	for id, row := range store.rows {
		selected, err := row.DecodeSelectedCategories()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(selected), taste.MinSelected, "taste %d", id)
		assert.LessOrEqual(t, len(selected), taste.MaxSelected, "taste %d", id)

		products, err := row.DecodeRecommendedProducts()
		require.NoError(t, err)
		scores, err := row.DecodeRecommendedProductScores()
		require.NoError(t, err)
		for cat, ids := range products {
			assert.LessOrEqual(t, len(ids), 3)
			assert.Len(t, scores[cat], len(ids), "taste %d category %s", id, cat)
		}

		illSuited, err := row.DecodeIllSuitedCategories()
		require.NoError(t, err)
		catScores, err := row.DecodeCategoryScores()
		require.NoError(t, err)
		for _, cat := range illSuited {
			assert.Zero(t, catScores[cat])
			assert.NotContains(t, selected, cat)
		}
	}
}

func TestBuildRangeSkipsExistingWithoutForce(t *testing.T) {
	store := newMemConfigStore()
	b := newTestBuilder(store, &stubScorer{}, false)

	_, err := b.BuildRange(context.Background(), 1, 10)
	require.NoError(t, err)

	summary, err := b.BuildRange(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Skipped)
	assert.Zero(t, summary.Built)
	assert.Zero(t, summary.Updated)
}

func TestBuildRangeForceIsIdempotent(t *testing.T) {
	store := newMemConfigStore()
	scorer := &stubScorer{}

	_, err := newTestBuilder(store, scorer, true).BuildRange(context.Background(), 1, 10)
	require.NoError(t, err)

	first := map[int]domain.TasteConfig{}
	for id, row := range store.rows {
		first[id] = *row
	}
	upserts := store.upserted

	summary, err := newTestBuilder(store, scorer, true).BuildRange(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Unchanged)
	assert.Equal(t, upserts, store.upserted, "identical payloads write nothing")
	for id, row := range store.rows {
		firstRow := first[id]
		assert.True(t, firstRow.PayloadEquals(row), "taste %d changed across runs", id)
	}
}

func TestBuildRangeIsolatesStoreFailures(t *testing.T) {
	store := newMemConfigStore()
	store.failOn[5] = true
	b := newTestBuilder(store, &stubScorer{}, false)

	summary, err := b.BuildRange(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 9, summary.Built)
	assert.Equal(t, 1, summary.Failed)
	assert.NotContains(t, store.rows, 5)
	assert.Len(t, store.rows, 9)
}

func TestBuildRangeScorerFailureKeepsCategory(t *testing.T) {
	store := newMemConfigStore()
	scorer := &stubScorer{failCat: "냉장고"}
	b := newTestBuilder(store, scorer, false)

	summary, err := b.BuildRange(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Built)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, scorer.failures, summary.ScorerFailures)

	affected := 0
	for _, row := range store.rows {
		selected, err := row.DecodeSelectedCategories()
		require.NoError(t, err)
		products, err := row.DecodeRecommendedProducts()
		require.NoError(t, err)
		for _, cat := range selected {
			if cat == "냉장고" {
				affected++
				assert.Empty(t, products[cat], "failed category keeps its slot with no products")
			}
		}
	}
	assert.Positive(t, affected, "expected 냉장고 selected for some tastes")
}

func TestParseTasteRange(t *testing.T) {
	from, to, err := ParseTasteRange("1-120")
	require.NoError(t, err)
	assert.Equal(t, 1, from)
	assert.Equal(t, 120, to)

	for _, bad := range []string{"", "120", "0-10", "5-3", "1-999999", "a-b"} {
		_, _, err := ParseTasteRange(bad)
		assert.Error(t, err, "range %q", bad)
	}
}
