package builder

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"applianceReco/business/taste"
	"applianceReco/domain"
	"applianceReco/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ---- Repository interfaces ----

// ProductScorer supplies per-taste product rankings for one category,
// ordered best first.
type ProductScorer interface {
	ScoreProducts(ctx context.Context, tasteID int, category string, limit int) ([]domain.ScoredProduct, error)
}

type ConfigStore interface {
	// GetByTasteID returns (nil, nil) when no record exists for the id.
	GetByTasteID(ctx context.Context, tasteID int) (*domain.TasteConfig, error)
	Upsert(ctx context.Context, cfg *domain.TasteConfig) error
}

// ---- Builder ----

type Options struct {
	// Force rebuilds tastes that already have a stored config.
	Force bool
	// Concurrency caps how many tastes build at once.
	Concurrency int
	// TopProducts caps the stored products per selected category.
	TopProducts int
	// ScoreLimit is how many ranked products to request per category
	// before trimming to TopProducts.
	ScoreLimit int
}

const (
	defaultConcurrency = 4
	defaultTopProducts = 3
	defaultScoreLimit  = 10
)

// Summary is the outcome of one builder run. A taste counts as exactly one
// of Built, Updated, Unchanged, Skipped or Failed.
type Summary struct {
	RunID          string
	Built          int
	Updated        int
	Unchanged      int
	Skipped        int
	Failed         int
	ScorerFailures int
}

type Builder struct {
	registry *taste.Registry
	selector taste.Selector
	store    ConfigStore
	scorer   ProductScorer
	opts     Options
}

func NewBuilder(
	registry *taste.Registry,
	selector taste.Selector,
	store ConfigStore,
	scorer ProductScorer,
	opts Options,
) *Builder {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.TopProducts <= 0 {
		opts.TopProducts = defaultTopProducts
	}
	if opts.ScoreLimit <= 0 {
		opts.ScoreLimit = defaultScoreLimit
	}
	return &Builder{
		registry: registry,
		selector: selector,
		store:    store,
		scorer:   scorer,
		opts:     opts,
	}
}

// ParseTasteRange parses an inclusive "a-b" range.
func ParseTasteRange(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid taste range %q, expected \"a-b\"", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid taste range %q: %w", s, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid taste range %q: %w", s, err)
	}
	if from < 1 || to > taste.TasteCount || from > to {
		return 0, 0, fmt.Errorf("taste range %q out of bounds [1, %d]", s, taste.TasteCount)
	}
	return from, to, nil
}

// BuildRange precomputes the configs for every taste id in [from, to]. A
// failing taste is counted and logged but never stops the rest of the run;
// the caller decides what a nonzero Failed count means for the process
// exit code.
func (b *Builder) BuildRange(ctx context.Context, from, to int) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if from < 1 || to > taste.TasteCount || from > to {
		return nil, fmt.Errorf("taste range %d-%d out of bounds [1, %d]", from, to, taste.TasteCount)
	}

	summary := &Summary{RunID: uuid.NewString()}
	var mu sync.Mutex

	logger.Info("taste_build_start",
		"run_id", summary.RunID,
		"from", from,
		"to", to,
		"force", b.opts.Force,
		"concurrency", b.opts.Concurrency,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Concurrency)

	for tasteID := from; tasteID <= to; tasteID++ {
		g.Go(func() error {
			outcome, scorerFailures, err := b.buildOne(gctx, tasteID)

			mu.Lock()
			defer mu.Unlock()
			summary.ScorerFailures += scorerFailures
			if err != nil {
				summary.Failed++
				logger.Error("taste_build_failed",
					"run_id", summary.RunID,
					"taste_id", tasteID,
					"error", err,
				)
				BuildOutcomesTotal.WithLabelValues("failed").Inc()
				return nil
			}
			switch outcome {
			case outcomeBuilt:
				summary.Built++
			case outcomeUpdated:
				summary.Updated++
			case outcomeUnchanged:
				summary.Unchanged++
			case outcomeSkipped:
				summary.Skipped++
			}
			BuildOutcomesTotal.WithLabelValues(string(outcome)).Inc()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}

	logger.Info("taste_build_done",
		"run_id", summary.RunID,
		"built", summary.Built,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"scorer_failures", summary.ScorerFailures,
	)
	return summary, nil
}

type buildOutcome string

const (
	outcomeBuilt     buildOutcome = "built"
	outcomeUpdated   buildOutcome = "updated"
	outcomeUnchanged buildOutcome = "unchanged"
	outcomeSkipped   buildOutcome = "skipped"
)

func (b *Builder) buildOne(ctx context.Context, tasteID int) (buildOutcome, int, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, fmt.Errorf("context error: %w", err)
	}

	existing, err := b.store.GetByTasteID(ctx, tasteID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to load existing config: %w", err)
	}
	if existing != nil && !b.opts.Force {
		return outcomeSkipped, 0, nil
	}

	vector := RepresentativeVector(tasteID)
	scores := b.registry.ScoreCategories(vector)
	selected := b.selector.Select(scores)

	illSuited := b.registry.IllSuited(vector)
	illSuitedList := make([]string, 0, len(illSuited))
	for name := range illSuited {
		illSuitedList = append(illSuitedList, name)
	}
	sort.Strings(illSuitedList)

	hasEssential := false
	for _, cat := range selected {
		if b.registry.Has(cat.Name, taste.TraitEssential) {
			hasEssential = true
			break
		}
	}
	if !hasEssential {
		logger.Warn("taste_build_no_essential_selected", "taste_id", tasteID)
	}

	products := map[string][]string{}
	productScores := map[string][]int{}
	selectedNames := make([]string, 0, len(selected))
	scorerFailures := 0

	for _, cat := range selected {
		selectedNames = append(selectedNames, cat.Name)

		ranked, err := b.scorer.ScoreProducts(ctx, tasteID, cat.Name, b.opts.ScoreLimit)
		if err != nil {
			// A scorer outage for one category must not sink the taste;
			// the category keeps its slot with an empty product list.
			scorerFailures++
			logger.Warn("taste_build_scorer_failed",
				"taste_id", tasteID,
				"category", cat.Name,
				"error", err,
			)
			continue
		}

		seen := map[string]bool{}
		for _, sp := range ranked {
			if sp.ProductID == "" || seen[sp.ProductID] {
				continue
			}
			seen[sp.ProductID] = true
			products[cat.Name] = append(products[cat.Name], sp.ProductID)
			productScores[cat.Name] = append(productScores[cat.Name], sp.Score)
			if len(products[cat.Name]) >= b.opts.TopProducts {
				break
			}
		}
	}

	cfg := &domain.TasteConfig{
		TasteID:                     tasteID,
		Description:                 Describe(tasteID, vector),
		RepresentativeVibe:          vector.Vibe,
		RepresentativeHouseholdSize: vector.HouseholdSize,
		RepresentativeHousingType:   vector.HousingType,
		RepresentativePyung:         vector.Pyung,
		RepresentativeMainSpace:     strings.Join(vector.MainSpace, ","),
		RepresentativeHasPet:        vector.HasPet,
		RepresentativePriority:      vector.PrimaryPriority(),
		RepresentativeBudgetLevel:   vector.BudgetLevel,
		AutoGenerated:               true,
	}
	if err := cfg.SetCategoryScores(scores); err != nil {
		return "", scorerFailures, err
	}
	if err := cfg.SetIllSuitedCategories(illSuitedList); err != nil {
		return "", scorerFailures, err
	}
	if err := cfg.SetSelectedCategories(selectedNames); err != nil {
		return "", scorerFailures, err
	}
	if err := cfg.SetRecommendedProducts(products); err != nil {
		return "", scorerFailures, err
	}
	if err := cfg.SetRecommendedProductScores(productScores); err != nil {
		return "", scorerFailures, err
	}

	if existing != nil && existing.PayloadEquals(cfg) {
		return outcomeUnchanged, scorerFailures, nil
	}

	if err := b.store.Upsert(ctx, cfg); err != nil {
		return "", scorerFailures, fmt.Errorf("failed to upsert taste config: %w", err)
	}
	if existing != nil {
		return outcomeUpdated, scorerFailures, nil
	}
	return outcomeBuilt, scorerFailures, nil
}
