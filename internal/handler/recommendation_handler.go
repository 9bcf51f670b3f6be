package handler

import (
	"net/http"

	"shortshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RecommendationHandler struct {
	recUsecase *usecase.RecommendationUsecase
}

// DI
func NewRecommendationHandler(recUsecase *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{recUsecase: recUsecase}
}

func (h *RecommendationHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/product")
	g.POST("/:product_id/recommendations/:recommended_id", h.Add)
	g.GET("/:product_id/recommendations", h.List)
	g.DELETE("/recommendations/:recommendation_id", h.Delete)
}

func (h *RecommendationHandler) Add(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}
	recommendedID, err := parseIDParam(c, "recommended_id")
	if err != nil {
		return writeError(c, err)
	}

	resp, err := h.recUsecase.Add(c.Request().Context(), productID, recommendedID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RecommendationHandler) List(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}

	recs, err := h.recUsecase.List(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *RecommendationHandler) Delete(c echo.Context) error {
	recommendationID, err := parseIDParam(c, "recommendation_id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.recUsecase.Delete(c.Request().Context(), recommendationID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usecase.MessageResponse{Message: "Recommendation deleted"})
}
