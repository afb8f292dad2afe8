package taste

import (
	"context"
	"fmt"
	"strings"

	"applianceReco/domain"
	"applianceReco/pkg/logger"
)

// ---- Repository interfaces ----

// RepresentativeKey narrows a representative-profile lookup. Empty string
// fields and zero ints are treated as wildcards by the store.
type RepresentativeKey struct {
	Vibe          string
	HouseholdSize int
	HousingType   string
	Pyung         int
	MainSpace     string
	HasPet        *bool
	Priority      string
	BudgetLevel   string
}

type TasteConfigStore interface {
	// GetByTasteID returns (nil, nil) when no record exists for the id.
	GetByTasteID(ctx context.Context, tasteID int) (*domain.TasteConfig, error)
	// FindByRepresentative matches on the representative profile columns,
	// progressively dropping the least significant conditions until
	// something matches. Returns (nil, nil) when nothing does.
	FindByRepresentative(ctx context.Context, key RepresentativeKey) (*domain.TasteConfig, error)
}

type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

// ---- Usecase / Service ----

// Recommendation is one served recommendation: the resolved taste plus the
// selected categories with their surviving products, best first.
type Recommendation struct {
	TasteID    int                             `json:"taste_id"`
	Vector     domain.Onboarding               `json:"vector"`
	Categories []domain.CategoryRecommendation `json:"categories"`
}

// DebugReport exposes the intermediate engine state for one vector.
type DebugReport struct {
	Vector           domain.Onboarding   `json:"vector"`
	TasteID          int                 `json:"taste_id"`
	CategoryScores   map[string]float64  `json:"category_scores"`
	IllSuitedReasons map[string][]string `json:"ill_suited_reasons"`
	Selected         []SelectedCategory  `json:"selected"`
}

type TasteService struct {
	registry    *Registry
	selector    Selector
	filter      *HardFilter
	configStore TasteConfigStore
	productRepo ProductRepository
	cfg         Config
}

func NewTasteService(
	registry *Registry,
	selector Selector,
	filter *HardFilter,
	configStore TasteConfigStore,
	productRepo ProductRepository,
	cfg Config,
) *TasteService {
	return &TasteService{
		registry:    registry,
		selector:    selector,
		filter:      filter,
		configStore: configStore,
		productRepo: productRepo,
		cfg:         cfg,
	}
}

// Recommend classifies the raw onboarding answers, loads the precomputed
// config for the taste and serves its category recommendations. The
// precomputed product lists are re-checked against the live catalog so a
// product that no longer passes the hard filter never reaches the client.
func (s *TasteService) Recommend(ctx context.Context, raw map[string]any) (*Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	vector, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	tasteID := ClassifyTaste(vector)

	cfg, err := s.configStore.GetByTasteID(ctx, tasteID)
	if err != nil {
		RecommendationsServedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load taste config: %w", err)
	}
	if cfg == nil {
		RecommendationsServedTotal.WithLabelValues("missing_config").Inc()
		return nil, fmt.Errorf("%w: taste %d", domain.ErrTasteConfigMissing, tasteID)
	}

	categories, err := s.buildCategories(ctx, cfg, vector)
	if err != nil {
		RecommendationsServedTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("taste_recommend",
		"trace_id", tid,
		"taste_id", tasteID,
		"categories", len(categories),
	)

	RecommendationsServedTotal.WithLabelValues("ok").Inc()
	RecommendedCategories.Observe(float64(len(categories)))

	return &Recommendation{
		TasteID:    tasteID,
		Vector:     vector,
		Categories: categories,
	}, nil
}

// buildCategories turns the stored JSON payloads into ordered category
// recommendations, trimming each list to the configured top count.
func (s *TasteService) buildCategories(
	ctx context.Context,
	cfg *domain.TasteConfig,
	vector domain.Onboarding,
) ([]domain.CategoryRecommendation, error) {
	selected, err := cfg.DecodeSelectedCategories()
	if err != nil {
		return nil, err
	}
	scores, err := cfg.DecodeCategoryScores()
	if err != nil {
		return nil, err
	}
	productIDs, err := cfg.DecodeRecommendedProducts()
	if err != nil {
		return nil, err
	}
	productScores, err := cfg.DecodeRecommendedProductScores()
	if err != nil {
		return nil, err
	}

	allowed, err := s.allowedProducts(ctx, productIDs, vector)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CategoryRecommendation, 0, len(selected))
	for _, category := range selected {
		ids := productIDs[category]
		catScores := productScores[category]

		products := make([]domain.ScoredProduct, 0, len(ids))
		for i, id := range ids {
			if allowed != nil && !allowed[id] {
				continue
			}
			score := 0
			if i < len(catScores) {
				score = catScores[i]
			}
			products = append(products, domain.ScoredProduct{ProductID: id, Score: score})
			if len(products) >= s.cfg.TopProducts {
				break
			}
		}

		out = append(out, domain.CategoryRecommendation{
			Category: category,
			Score:    scores[category],
			Products: products,
		})
	}
	return out, nil
}

// allowedProducts loads every referenced product in one query and runs the
// hard filter. A nil map means re-validation is off and every id passes.
// Ids missing from the catalog are dropped.
func (s *TasteService) allowedProducts(
	ctx context.Context,
	productIDs map[string][]string,
	vector domain.Onboarding,
) (map[string]bool, error) {
	if !s.cfg.Revalidate || s.productRepo == nil {
		return nil, nil
	}

	seen := map[string]bool{}
	var ids []string
	for _, list := range productIDs {
		for _, id := range list {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	allowed := make(map[string]bool, len(products))
	for _, p := range products {
		if s.filter.Allow(p, vector) {
			allowed[p.ProductID] = true
		}
	}
	return allowed, nil
}

// Debug recomputes the full engine pipeline for a vector without touching
// the precomputed configs.
func (s *TasteService) Debug(ctx context.Context, raw map[string]any) (*DebugReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	vector, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	scores := s.registry.ScoreCategories(vector)
	reasons := map[string][]string{}
	for _, name := range s.registry.Names() {
		if rs := s.registry.ReasonsFor(name, vector); len(rs) > 0 {
			reasons[name] = rs
		}
	}

	return &DebugReport{
		Vector:           vector,
		TasteID:          ClassifyTaste(vector),
		CategoryScores:   scores,
		IllSuitedReasons: reasons,
		Selected:         s.selector.Select(scores),
	}, nil
}

// GetTasteConfig returns the stored config for a taste id.
func (s *TasteService) GetTasteConfig(ctx context.Context, tasteID int) (*domain.TasteConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if tasteID < 1 || tasteID > TasteCount {
		return nil, fmt.Errorf("%w: taste id %d out of range", domain.ErrTasteConfigMissing, tasteID)
	}

	cfg, err := s.configStore.GetByTasteID(ctx, tasteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load taste config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: taste %d", domain.ErrTasteConfigMissing, tasteID)
	}
	return cfg, nil
}

// MatchTaste finds the stored config whose representative profile is
// closest to the raw answers. Unlike Recommend this never hashes; it is
// the lookup used when the client wants "the taste like mine" rather than
// an exact classification.
func (s *TasteService) MatchTaste(ctx context.Context, raw map[string]any) (*domain.TasteConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	vector, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	hasPet := vector.HasPet
	key := RepresentativeKey{
		Vibe:          vector.Vibe,
		HouseholdSize: vector.HouseholdSize,
		HousingType:   vector.HousingType,
		Pyung:         vector.Pyung,
		MainSpace:     strings.Join(vector.MainSpace, ","),
		HasPet:        &hasPet,
		Priority:      vector.PrimaryPriority(),
		BudgetLevel:   vector.BudgetLevel,
	}

	cfg, err := s.configStore.FindByRepresentative(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to match taste config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: no representative match", domain.ErrTasteConfigMissing)
	}
	return cfg, nil
}
