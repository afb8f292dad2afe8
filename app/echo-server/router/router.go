package router

import (
	"applianceReco/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Recommend)
	reco.GET("/debug", handler.DebugRecommend)
}

func SetTasteRoutes(api *echo.Group, handler *rest.TasteHandler) {
	tastes := api.Group("/tastes")
	tastes.GET("/match", handler.MatchTaste)
	tastes.GET("/:id", handler.GetTasteConfig)
}
