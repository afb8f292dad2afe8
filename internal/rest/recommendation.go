package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"applianceReco/business/taste"
	"applianceReco/domain"
	"applianceReco/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendationHandler struct {
		validate     *validator.Validate
		tasteService RecommendationService
	}

	RecommendationService interface {
		Recommend(ctx context.Context, raw map[string]any) (*taste.Recommendation, error)
		Debug(ctx context.Context, raw map[string]any) (*taste.DebugReport, error)
	}

	// OnboardingRequest carries the raw onboarding answers. Every field is
	// optional; absent answers get engine defaults.
	OnboardingRequest struct {
		Vibe          string   `json:"vibe" query:"vibe"`
		HouseholdSize *int     `json:"household_size" query:"household_size" validate:"omitempty,min=1,max=20"`
		HousingType   string   `json:"housing_type" query:"housing_type"`
		Pyung         *int     `json:"pyung" query:"pyung" validate:"omitempty,min=1,max=200"`
		MainSpace     []string `json:"main_space" query:"main_space"`
		HasPet        *bool    `json:"has_pet" query:"has_pet"`
		Cooking       string   `json:"cooking" query:"cooking"`
		Laundry       string   `json:"laundry" query:"laundry"`
		Media         string   `json:"media" query:"media"`
		Priority      []string `json:"priority" query:"priority"`
		BudgetLevel   string   `json:"budget_level" query:"budget_level"`
	}
)

// toRaw keeps only the answers the client actually sent, so the engine can
// tell "absent" from "empty".
func (r OnboardingRequest) toRaw() map[string]any {
	raw := map[string]any{}
	if r.Vibe != "" {
		raw["vibe"] = r.Vibe
	}
	if r.HouseholdSize != nil {
		raw["household_size"] = *r.HouseholdSize
	}
	if r.HousingType != "" {
		raw["housing_type"] = r.HousingType
	}
	if r.Pyung != nil {
		raw["pyung"] = *r.Pyung
	}
	if len(r.MainSpace) > 0 {
		raw["main_space"] = r.MainSpace
	}
	if r.HasPet != nil {
		raw["has_pet"] = *r.HasPet
	}
	if r.Cooking != "" {
		raw["cooking"] = r.Cooking
	}
	if r.Laundry != "" {
		raw["laundry"] = r.Laundry
	}
	if r.Media != "" {
		raw["media"] = r.Media
	}
	if len(r.Priority) > 0 {
		raw["priority"] = r.Priority
	}
	if r.BudgetLevel != "" {
		raw["budget_level"] = r.BudgetLevel
	}
	return raw
}

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:     validator.New(),
		tasteService: svc,
	}
}

// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.Inc()

	var req OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rec, err := h.tasteService.Recommend(c.Request().Context(), req.toRaw())
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

// GET /api/v1/recommendations/debug
func (h *RecommendationHandler) DebugRecommend(c echo.Context) error {
	var req OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	report, err := h.tasteService.Debug(c.Request().Context(), req.toRaw())
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidOnboardingInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTasteConfigMissing):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
