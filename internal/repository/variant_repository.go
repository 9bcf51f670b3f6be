package repository

import (
	"context"

	"shortshop/internal/domain/model"
)

type VariantRepository interface {
	FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.ProductVariant, error)
	Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error)
	Update(ctx context.Context, v model.ProductVariant) error
	DeleteByID(ctx context.Context, variantID int64) error
	// 商品カスケード削除用
	DeleteByProductID(ctx context.Context, productID int64) error
}
