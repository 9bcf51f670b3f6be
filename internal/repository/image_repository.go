package repository

import (
	"context"

	"shortshop/internal/domain/model"
)

type ImageRepository interface {
	// 対象商品に属する画像だけを返す（他商品の画像IDはErrNotFound）
	FindByIDForProduct(ctx context.Context, imageID int64, productID int64) (model.ProductImage, error)
	CreateBulk(ctx context.Context, images []model.ProductImage) error
	DeleteByID(ctx context.Context, imageID int64) error
	DeleteByProductID(ctx context.Context, productID int64) error
}
