package postgres

import (
	"context"
	"fmt"

	"applianceReco/business/builder"
	"applianceReco/domain"

	"gorm.io/gorm"
)

// ProductScoreRepository reads the externally maintained per-taste product
// rankings. The scoring pipeline that fills product_scores runs outside
// this service; from here the table is read-only.
type ProductScoreRepository struct {
	DB *gorm.DB
}

var _ builder.ProductScorer = (*ProductScoreRepository)(nil)

func NewProductScoreRepository(db *gorm.DB) *ProductScoreRepository {
	return &ProductScoreRepository{DB: db}
}

func (r *ProductScoreRepository) ScoreProducts(ctx context.Context, tasteID int, category string, limit int) ([]domain.ScoredProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 10
	}

	var rows []domain.ProductScore
	err := r.DB.WithContext(ctx).
		Where("taste_id = ? AND category = ?", tasteID, category).
		Order("score DESC, product_id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalScorer, err)
	}

	out := make([]domain.ScoredProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ScoredProduct{ProductID: row.ProductID, Score: row.Score})
	}
	return out, nil
}
