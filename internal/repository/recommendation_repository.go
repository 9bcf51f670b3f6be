package repository

import (
	"context"

	"shortshop/internal/domain/model"
)

type RecommendationRepository interface {
	ExistsByPair(ctx context.Context, baseProductID int64, recommendedProductID int64) (bool, error)
	ListByBaseProductID(ctx context.Context, baseProductID int64) ([]model.ProductRecommendation, error)
	Create(ctx context.Context, rec model.ProductRecommendation) (model.ProductRecommendation, error)
	DeleteByID(ctx context.Context, recID int64) error
	// base側・recommended側どちらのエッジも消す（商品カスケード削除用）
	DeleteByProductID(ctx context.Context, productID int64) error
}
