package rest

import (
	"context"
	"net/http"
	"strconv"

	"applianceReco/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	TasteHandler struct {
		validate     *validator.Validate
		tasteService TasteConfigService
	}

	TasteConfigService interface {
		GetTasteConfig(ctx context.Context, tasteID int) (*domain.TasteConfig, error)
		MatchTaste(ctx context.Context, raw map[string]any) (*domain.TasteConfig, error)
	}

	// TasteConfigResponse is the decoded view of a stored taste config.
	TasteConfigResponse struct {
		TasteID     int    `json:"taste_id"`
		Description string `json:"description"`

		RepresentativeVibe          string `json:"representative_vibe"`
		RepresentativeHouseholdSize int    `json:"representative_household_size"`
		RepresentativeHousingType   string `json:"representative_housing_type"`
		RepresentativePyung         int    `json:"representative_pyung"`
		RepresentativeMainSpace     string `json:"representative_main_space"`
		RepresentativeHasPet        bool   `json:"representative_has_pet"`
		RepresentativePriority      string `json:"representative_priority"`
		RepresentativeBudgetLevel   string `json:"representative_budget_level"`

		CategoryScores           map[string]float64  `json:"category_scores"`
		IllSuitedCategories      []string            `json:"ill_suited_categories"`
		SelectedCategories       []string            `json:"selected_categories"`
		RecommendedProducts      map[string][]string `json:"recommended_products"`
		RecommendedProductScores map[string][]int    `json:"recommended_product_scores"`

		AutoGenerated bool `json:"auto_generated"`
	}
)

func NewTasteHandler(svc TasteConfigService) *TasteHandler {
	return &TasteHandler{
		validate:     validator.New(),
		tasteService: svc,
	}
}

// GET /api/v1/tastes/:id
func (h *TasteHandler) GetTasteConfig(c echo.Context) error {
	tasteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid taste id"})
	}

	cfg, err := h.tasteService.GetTasteConfig(c.Request().Context(), tasteID)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	resp, err := tasteConfigResponse(cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

// GET /api/v1/tastes/match
func (h *TasteHandler) MatchTaste(c echo.Context) error {
	var req OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cfg, err := h.tasteService.MatchTaste(c.Request().Context(), req.toRaw())
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	resp, err := tasteConfigResponse(cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

func tasteConfigResponse(cfg *domain.TasteConfig) (*TasteConfigResponse, error) {
	scores, err := cfg.DecodeCategoryScores()
	if err != nil {
		return nil, err
	}
	illSuited, err := cfg.DecodeIllSuitedCategories()
	if err != nil {
		return nil, err
	}
	selected, err := cfg.DecodeSelectedCategories()
	if err != nil {
		return nil, err
	}
	products, err := cfg.DecodeRecommendedProducts()
	if err != nil {
		return nil, err
	}
	productScores, err := cfg.DecodeRecommendedProductScores()
	if err != nil {
		return nil, err
	}

	return &TasteConfigResponse{
		TasteID:     cfg.TasteID,
		Description: cfg.Description,

		RepresentativeVibe:          cfg.RepresentativeVibe,
		RepresentativeHouseholdSize: cfg.RepresentativeHouseholdSize,
		RepresentativeHousingType:   cfg.RepresentativeHousingType,
		RepresentativePyung:         cfg.RepresentativePyung,
		RepresentativeMainSpace:     cfg.RepresentativeMainSpace,
		RepresentativeHasPet:        cfg.RepresentativeHasPet,
		RepresentativePriority:      cfg.RepresentativePriority,
		RepresentativeBudgetLevel:   cfg.RepresentativeBudgetLevel,

		CategoryScores:           scores,
		IllSuitedCategories:      illSuited,
		SelectedCategories:       selected,
		RecommendedProducts:      products,
		RecommendedProductScores: productScores,

		AutoGenerated: cfg.AutoGenerated,
	}, nil
}
