package postgres

import (
	"context"
	"errors"
	"fmt"

	"applianceReco/business/builder"
	"applianceReco/business/taste"
	"applianceReco/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TasteConfigRepository struct {
	DB *gorm.DB
}

var (
	_ taste.TasteConfigStore = (*TasteConfigRepository)(nil)
	_ builder.ConfigStore    = (*TasteConfigRepository)(nil)
)

func NewTasteConfigRepository(db *gorm.DB) *TasteConfigRepository {
	return &TasteConfigRepository{DB: db}
}

func (r *TasteConfigRepository) GetByTasteID(ctx context.Context, tasteID int) (*domain.TasteConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cfg domain.TasteConfig
	err := r.DB.WithContext(ctx).
		Where("taste_id = ?", tasteID).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return &cfg, nil
}

func (r *TasteConfigRepository) Upsert(ctx context.Context, cfg *domain.TasteConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "taste_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"description",
				"representative_vibe",
				"representative_household_size",
				"representative_housing_type",
				"representative_pyung",
				"representative_main_space",
				"representative_has_pet",
				"representative_priority",
				"representative_budget_level",
				"category_scores",
				"ill_suited_categories",
				"selected_categories",
				"recommended_products",
				"recommended_product_scores",
				"auto_generated",
				"updated_at",
			}),
		}).
		Create(cfg).Error
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return nil
}

// pyungBand widens the representative pyung match; an exact equality would
// almost never hit because the stored value comes from the enumeration.
const pyungBand = 5

// FindByRepresentative matches the representative profile columns,
// retrying with the trailing conditions dropped one at a time. The
// condition order runs from most to least significant, so pyung and main
// space give way before vibe and household size do.
func (r *TasteConfigRepository) FindByRepresentative(ctx context.Context, key taste.RepresentativeKey) (*domain.TasteConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	type cond struct {
		query string
		args  []any
	}

	var conds []cond
	if key.Vibe != "" {
		conds = append(conds, cond{"representative_vibe = ?", []any{key.Vibe}})
	}
	if key.HouseholdSize > 0 {
		conds = append(conds, cond{"representative_household_size = ?", []any{key.HouseholdSize}})
	}
	if key.BudgetLevel != "" {
		conds = append(conds, cond{"representative_budget_level = ?", []any{key.BudgetLevel}})
	}
	if key.HousingType != "" {
		conds = append(conds, cond{"representative_housing_type = ?", []any{key.HousingType}})
	}
	if key.Priority != "" {
		conds = append(conds, cond{"representative_priority = ?", []any{key.Priority}})
	}
	if key.HasPet != nil {
		conds = append(conds, cond{"representative_has_pet = ?", []any{*key.HasPet}})
	}
	if key.MainSpace != "" {
		conds = append(conds, cond{"representative_main_space = ?", []any{key.MainSpace}})
	}
	if key.Pyung > 0 {
		conds = append(conds, cond{
			"representative_pyung BETWEEN ? AND ?",
			[]any{key.Pyung - pyungBand, key.Pyung + pyungBand},
		})
	}
	if len(conds) == 0 {
		return nil, nil
	}

	for n := len(conds); n >= 1; n-- {
		q := r.DB.WithContext(ctx).Model(&domain.TasteConfig{})
		for _, c := range conds[:n] {
			q = q.Where(c.query, c.args...)
		}

		var cfg domain.TasteConfig
		err := q.Order("taste_id ASC").First(&cfg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
		}
		return &cfg, nil
	}
	return nil, nil
}
