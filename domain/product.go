package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     product_id     TEXT PRIMARY KEY,
//     product_name   TEXT,
//     main_category  TEXT NOT NULL,
//     price          NUMERIC,
//     status         TEXT,
//     depth_mm       TEXT,
//     capacity_kg    TEXT,
//     spec_json      JSONB,
//     created_at     TIMESTAMPTZ DEFAULT NOW()
// );

// Product is one catalog entry. Depth and capacity arrive as raw spec
// strings ("750mm", "약 24 kg"); the hard filter parses the first integer
// substring and treats anything ambiguous as 0.
type Product struct {
	ProductID    string            `gorm:"column:product_id;primaryKey" json:"product_id"`
	ProductName  string            `gorm:"column:product_name;type:text" json:"product_name"`
	MainCategory string            `gorm:"column:main_category;type:text;not null" json:"main_category"`
	Price        float64           `gorm:"column:price;type:numeric" json:"price"`
	Status       string            `gorm:"column:status;type:text" json:"status"`
	DepthMM      string            `gorm:"column:depth_mm;type:text" json:"depth_mm"`
	CapacityKG   string            `gorm:"column:capacity_kg;type:text" json:"capacity_kg"`
	Spec         datatypes.JSONMap `gorm:"column:spec_json;type:jsonb" json:"spec_json"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// CREATE TABLE public.product_scores (
//     taste_id    INT NOT NULL,
//     category    TEXT NOT NULL,
//     product_id  TEXT NOT NULL,
//     score       INT NOT NULL,
//     PRIMARY KEY (taste_id, category, product_id)
// );

// ProductScore is one row of the externally maintained per-taste product
// scoring. The builder only reads this table.
type ProductScore struct {
	TasteID   int    `gorm:"column:taste_id;primaryKey" json:"taste_id"`
	Category  string `gorm:"column:category;primaryKey" json:"category"`
	ProductID string `gorm:"column:product_id;primaryKey" json:"product_id"`
	Score     int    `gorm:"column:score;not null" json:"score"`
}

func (ProductScore) TableName() string {
	return "product_scores"
}

// ScoredProduct is a product id with its score in [0, 100], as returned by
// the external product scorer.
type ScoredProduct struct {
	ProductID string `json:"product_id"`
	Score     int    `json:"score"`
}

// CategoryRecommendation is one category's slice of a runtime
// recommendation, ordered by descending product score.
type CategoryRecommendation struct {
	Category string          `json:"category"`
	Score    float64         `json:"score"`
	Products []ScoredProduct `json:"products"`
}
