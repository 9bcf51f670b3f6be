package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"shortshop/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

var validate = validator.New()

func writeError(c echo.Context, err error) error {
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// validatorのエラーをfieldごとの説明に変換する
func writeValidationError(c echo.Context, err error) error {
	details := map[string]string{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			details[fe.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	}
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: details,
	})
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, usecase.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

type VariantRequest struct {
	Color   string `json:"color" validate:"required,min=1,max=50"`
	Size    string `json:"size" validate:"required,oneof=XS S M L XL XXL"`
	InStock bool   `json:"in_stock"`
}

type ImageRequest struct {
	Color    string `json:"color"`
	ImageURL string `json:"image_url" validate:"required,min=1,max=255"`
}

type ProductCreateRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=120"`
	Price             float64          `json:"price" validate:"required,gt=0"`
	Description       string           `json:"description" validate:"required,min=1"`
	LifetimeGuarantee *bool            `json:"lifetime_guarantee"`
	Variants          []VariantRequest `json:"variants" validate:"dive"`
	Images            []ImageRequest   `json:"images" validate:"dive"`
}

type ProductUpdateRequest struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	LifetimeGuarantee *bool    `json:"lifetime_guarantee,omitempty"`
}

type ProductHandler struct {
	productUsecase *usecase.ProductUsecase
}

// DI
func NewProductHandler(productUsecase *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

func (h *ProductHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/product")
	g.GET("", h.List)
	g.GET("/", h.List)
	g.POST("", h.Create)
	g.POST("/", h.Create)
	g.GET("/:product_id", h.Get)
	g.PUT("/:product_id", h.Update)
	g.DELETE("/:product_id", h.Delete)
}

func (h *ProductHandler) List(c echo.Context) error {
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

	products, err := h.productUsecase.List(c.Request().Context(), skip, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}

	product, err := h.productUsecase.Get(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	//省略時はtrue
	lifetimeGuarantee := true
	if req.LifetimeGuarantee != nil {
		lifetimeGuarantee = *req.LifetimeGuarantee
	}

	in := usecase.CreateProductInput{
		Name:              req.Name,
		Price:             req.Price,
		Description:       req.Description,
		LifetimeGuarantee: lifetimeGuarantee,
	}
	for _, v := range req.Variants {
		in.Variants = append(in.Variants, usecase.CreateVariantInput{
			Color:   v.Color,
			Size:    v.Size,
			InStock: v.InStock,
		})
	}
	for _, img := range req.Images {
		in.Images = append(in.Images, usecase.CreateImageInput{
			Color:    img.Color,
			ImageURL: img.ImageURL,
		})
	}

	product, err := h.productUsecase.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	product, err := h.productUsecase.Update(c.Request().Context(), productID, usecase.UpdateProductInput{
		Name:              req.Name,
		Price:             req.Price,
		Description:       req.Description,
		LifetimeGuarantee: req.LifetimeGuarantee,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.productUsecase.Delete(c.Request().Context(), productID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usecase.MessageResponse{Message: "Product deleted"})
}
