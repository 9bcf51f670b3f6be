package handler

import (
	"net/http"

	"shortshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CartCreateRequest struct {
	SessionID string `json:"session_id" validate:"required,min=1,max=128"`
}

type CartItemCreateRequest struct {
	VariantID int64 `json:"variant_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type CartItemUpdateRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

type CartHandler struct {
	cartUsecase *usecase.CartUsecase
}

// DI
func NewCartHandler(cartUsecase *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

func (h *CartHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/cart")
	g.POST("", h.Create)
	g.POST("/", h.Create)
	g.GET("/:session_id", h.Get)
	g.DELETE("/:session_id", h.Clear)
	g.POST("/:session_id/items", h.AddItem)
	g.PUT("/:session_id/items/:item_id", h.UpdateItem)
	g.DELETE("/:session_id/items/:item_id", h.DeleteItem)
}

func (h *CartHandler) Create(c echo.Context) error {
	var req CartCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	cart, err := h.cartUsecase.Create(c.Request().Context(), req.SessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.cartUsecase.Get(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartUsecase.Clear(c.Request().Context(), c.Param("session_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usecase.MessageResponse{Message: "Cart cleared"})
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req CartItemCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	item, err := h.cartUsecase.AddItem(c.Request().Context(), c.Param("session_id"), req.VariantID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, err := parseIDParam(c, "item_id")
	if err != nil {
		return writeError(c, err)
	}

	var req CartItemUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	item, err := h.cartUsecase.UpdateItem(c.Request().Context(), c.Param("session_id"), itemID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) DeleteItem(c echo.Context) error {
	itemID, err := parseIDParam(c, "item_id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.cartUsecase.DeleteItem(c.Request().Context(), c.Param("session_id"), itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usecase.MessageResponse{Message: "Cart item deleted"})
}
