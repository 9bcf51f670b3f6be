package handler

import (
	"net/http"

	"shortshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ImageHandler struct {
	imageUsecase *usecase.ImageUsecase
}

// DI
func NewImageHandler(imageUsecase *usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{imageUsecase: imageUsecase}
}

func (h *ImageHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/product")
	g.POST("/:product_id/images", h.Add)
	g.DELETE("/:product_id/images/:image_id", h.Delete)
}

func (h *ImageHandler) Add(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}

	var reqs []ImageRequest
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	for _, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return writeValidationError(c, err)
		}
	}

	in := make([]usecase.CreateImageInput, 0, len(reqs))
	for _, req := range reqs {
		in = append(in, usecase.CreateImageInput{
			Color:    req.Color,
			ImageURL: req.ImageURL,
		})
	}

	resp, err := h.imageUsecase.Add(c.Request().Context(), productID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *ImageHandler) Delete(c echo.Context) error {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}
	imageID, err := parseIDParam(c, "image_id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.imageUsecase.Delete(c.Request().Context(), productID, imageID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usecase.MessageResponse{Message: "Image deleted"})
}
