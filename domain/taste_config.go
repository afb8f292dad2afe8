package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.taste_config (
//     taste_id                      INT PRIMARY KEY,
//     description                   TEXT,
//     representative_vibe           TEXT,
//     representative_household_size INT,
//     representative_housing_type   TEXT,
//     representative_pyung          INT,
//     representative_main_space     TEXT,
//     representative_has_pet        BOOLEAN,
//     representative_priority       TEXT,
//     representative_budget_level   TEXT,
//     category_scores               JSONB,
//     ill_suited_categories         JSONB,
//     selected_categories           JSONB,
//     recommended_products          JSONB,
//     recommended_product_scores    JSONB,
//     auto_generated                BOOLEAN DEFAULT TRUE,
//     created_at                    TIMESTAMPTZ DEFAULT NOW(),
//     updated_at                    TIMESTAMPTZ DEFAULT NOW()
// );

// TasteConfig is the precomputed record for one taste bucket. The JSON
// columns hold the typed payloads below; use the Set*/Decode helpers rather
// than touching the raw columns.
type TasteConfig struct {
	TasteID     int    `gorm:"column:taste_id;primaryKey" json:"taste_id"`
	Description string `gorm:"column:description;type:text" json:"description"`

	RepresentativeVibe          string `gorm:"column:representative_vibe;type:text" json:"representative_vibe"`
	RepresentativeHouseholdSize int    `gorm:"column:representative_household_size" json:"representative_household_size"`
	RepresentativeHousingType   string `gorm:"column:representative_housing_type;type:text" json:"representative_housing_type"`
	RepresentativePyung         int    `gorm:"column:representative_pyung" json:"representative_pyung"`
	RepresentativeMainSpace     string `gorm:"column:representative_main_space;type:text" json:"representative_main_space"`
	RepresentativeHasPet        bool   `gorm:"column:representative_has_pet" json:"representative_has_pet"`
	RepresentativePriority      string `gorm:"column:representative_priority;type:text" json:"representative_priority"`
	RepresentativeBudgetLevel   string `gorm:"column:representative_budget_level;type:text" json:"representative_budget_level"`

	CategoryScores           datatypes.JSON `gorm:"column:category_scores;type:jsonb" json:"category_scores"`
	IllSuitedCategories      datatypes.JSON `gorm:"column:ill_suited_categories;type:jsonb" json:"ill_suited_categories"`
	SelectedCategories       datatypes.JSON `gorm:"column:selected_categories;type:jsonb" json:"selected_categories"`
	RecommendedProducts      datatypes.JSON `gorm:"column:recommended_products;type:jsonb" json:"recommended_products"`
	RecommendedProductScores datatypes.JSON `gorm:"column:recommended_product_scores;type:jsonb" json:"recommended_product_scores"`

	AutoGenerated bool      `gorm:"column:auto_generated;default:true" json:"auto_generated"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TasteConfig) TableName() string {
	return "taste_config"
}

func (c *TasteConfig) SetCategoryScores(scores map[string]float64) error {
	return marshalInto(&c.CategoryScores, scores)
}

func (c *TasteConfig) SetIllSuitedCategories(categories []string) error {
	return marshalInto(&c.IllSuitedCategories, categories)
}

func (c *TasteConfig) SetSelectedCategories(categories []string) error {
	return marshalInto(&c.SelectedCategories, categories)
}

func (c *TasteConfig) SetRecommendedProducts(products map[string][]string) error {
	return marshalInto(&c.RecommendedProducts, products)
}

func (c *TasteConfig) SetRecommendedProductScores(scores map[string][]int) error {
	return marshalInto(&c.RecommendedProductScores, scores)
}

func (c *TasteConfig) DecodeCategoryScores() (map[string]float64, error) {
	out := map[string]float64{}
	return out, unmarshalFrom(c.CategoryScores, &out)
}

func (c *TasteConfig) DecodeIllSuitedCategories() ([]string, error) {
	var out []string
	return out, unmarshalFrom(c.IllSuitedCategories, &out)
}

func (c *TasteConfig) DecodeSelectedCategories() ([]string, error) {
	var out []string
	return out, unmarshalFrom(c.SelectedCategories, &out)
}

func (c *TasteConfig) DecodeRecommendedProducts() (map[string][]string, error) {
	out := map[string][]string{}
	return out, unmarshalFrom(c.RecommendedProducts, &out)
}

func (c *TasteConfig) DecodeRecommendedProductScores() (map[string][]int, error) {
	out := map[string][]int{}
	return out, unmarshalFrom(c.RecommendedProductScores, &out)
}

// PayloadEquals compares everything except the timestamps. The builder uses
// it to leave a row untouched when a re-run produced the same content, so a
// double run with force yields byte-identical records.
func (c *TasteConfig) PayloadEquals(other *TasteConfig) bool {
	if other == nil {
		return false
	}
	return c.TasteID == other.TasteID &&
		c.Description == other.Description &&
		c.RepresentativeVibe == other.RepresentativeVibe &&
		c.RepresentativeHouseholdSize == other.RepresentativeHouseholdSize &&
		c.RepresentativeHousingType == other.RepresentativeHousingType &&
		c.RepresentativePyung == other.RepresentativePyung &&
		c.RepresentativeMainSpace == other.RepresentativeMainSpace &&
		c.RepresentativeHasPet == other.RepresentativeHasPet &&
		c.RepresentativePriority == other.RepresentativePriority &&
		c.RepresentativeBudgetLevel == other.RepresentativeBudgetLevel &&
		bytes.Equal(c.CategoryScores, other.CategoryScores) &&
		bytes.Equal(c.IllSuitedCategories, other.IllSuitedCategories) &&
		bytes.Equal(c.SelectedCategories, other.SelectedCategories) &&
		bytes.Equal(c.RecommendedProducts, other.RecommendedProducts) &&
		bytes.Equal(c.RecommendedProductScores, other.RecommendedProductScores) &&
		c.AutoGenerated == other.AutoGenerated
}

func marshalInto(dst *datatypes.JSON, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal taste config field: %w", err)
	}
	*dst = raw
	return nil
}

func unmarshalFrom(src datatypes.JSON, v any) error {
	if len(src) == 0 {
		return nil
	}
	if err := json.Unmarshal(src, v); err != nil {
		return fmt.Errorf("failed to unmarshal taste config field: %w", err)
	}
	return nil
}
