package handler

import (
	"net/http"

	"shortshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type VariantHandler struct {
	variantUsecase *usecase.VariantUsecase
}

// DI
func NewVariantHandler(variantUsecase *usecase.VariantUsecase) *VariantHandler {
	return &VariantHandler{variantUsecase: variantUsecase}
}

func (h *VariantHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/product")
	g.POST("/:product_id/variants", h.Add)
	g.PUT("/variant/:variant_id", h.Update)
	g.DELETE("/variant/:variant_id", h.Delete)
}

func (h *VariantHandler) Add(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}

	var req VariantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	variant, err := h.variantUsecase.Add(c.Request().Context(), productID, usecase.CreateVariantInput{
		Color:   req.Color,
		Size:    req.Size,
		InStock: req.InStock,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) Update(c echo.Context) error {
	variantID, err := parseIDParam(c, "variant_id")
	if err != nil {
		return writeError(c, err)
	}

	var req VariantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	variant, err := h.variantUsecase.Update(c.Request().Context(), variantID, usecase.CreateVariantInput{
		Color:   req.Color,
		Size:    req.Size,
		InStock: req.InStock,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) Delete(c echo.Context) error {
	variantID, err := parseIDParam(c, "variant_id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.variantUsecase.Delete(c.Request().Context(), variantID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usecase.MessageResponse{Message: "Variant deleted"})
}
