package handler

import (
	"net/http"
	"strconv"

	"shortshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReviewCreateRequest struct {
	ProductID   int64  `json:"product_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,min=10,max=120"`
	Description string `json:"description" validate:"required,min=20,max=300"`
	AuthorName  string `json:"author_name" validate:"required,min=1"`
	Score       int    `json:"score" validate:"required,gte=1,lte=5"`
}

type ReviewHandler struct {
	reviewUsecase *usecase.ReviewUsecase
}

// DI
func NewReviewHandler(reviewUsecase *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

func (h *ReviewHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/review")
	g.GET("", h.List)
	g.GET("/", h.List)
	g.POST("", h.Create)
	g.POST("/", h.Create)
}

func (h *ReviewHandler) List(c echo.Context) error {
	skip := 0
	limit := 100
	if s := c.QueryParam("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid skip"})
		}
		skip = v
	}
	if s := c.QueryParam("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = v
	}

	reviews, err := h.reviewUsecase.List(c.Request().Context(), skip, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req ReviewCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	review, err := h.reviewUsecase.Create(c.Request().Context(), usecase.CreateReviewInput{
		ProductID:   req.ProductID,
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
		Score:       req.Score,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}
