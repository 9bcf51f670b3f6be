package repository

import (
	"context"

	"shortshop/internal/domain/model"
)

type ReviewRepository interface {
	List(ctx context.Context, skip int, limit int) ([]model.ProductReview, error)
	Create(ctx context.Context, r model.ProductReview) (model.ProductReview, error)
	DeleteByProductID(ctx context.Context, productID int64) error
}
