package server

import (
	"net/http"
	"time"

	"shortshop/internal/handler"

	"github.com/labstack/echo/v4"
)

const version = "1.0.0"

type Handlers struct {
	Product        *handler.ProductHandler
	Variant        *handler.VariantHandler
	Image          *handler.ImageHandler
	Recommendation *handler.RecommendationHandler
	Review         *handler.ReviewHandler
	Cart           *handler.CartHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Welcome to the shop API",
			"version": version,
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"message":   "API is running normally",
		})
	})

	api := e.Group("/api/v1")
	h.Product.RegisterRoutes(api)
	h.Variant.RegisterRoutes(api)
	h.Image.RegisterRoutes(api)
	h.Recommendation.RegisterRoutes(api)
	h.Review.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api)
}
