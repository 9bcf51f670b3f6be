package repository

import (
	"context"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"

	"gorm.io/gorm"
)

type RecommendationGormRepository struct {
	db *gorm.DB
}

// DI
func NewRecommendationGormRepository(db *gorm.DB) *RecommendationGormRepository {
	return &RecommendationGormRepository{db: db}
}

// (base, recommended)ペアの重複チェック
func (r *RecommendationGormRepository) ExistsByPair(ctx context.Context, baseProductID int64, recommendedProductID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.ProductRecommendation{}).
		Where("base_product_id = ? AND recommended_product_id = ?", baseProductID, recommendedProductID).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RecommendationGormRepository) ListByBaseProductID(ctx context.Context, baseProductID int64) ([]model.ProductRecommendation, error) {
	var recs []model.ProductRecommendation

	if err := r.db.WithContext(ctx).
		Where("base_product_id = ?", baseProductID).
		Order("id asc").
		Find(&recs).Error; err != nil {
		return []model.ProductRecommendation{}, err
	}

	return recs, nil
}

func (r *RecommendationGormRepository) Create(ctx context.Context, rec model.ProductRecommendation) (model.ProductRecommendation, error) {
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.ProductRecommendation{}, err
	}
	return rec, nil
}

func (r *RecommendationGormRepository) DeleteByID(ctx context.Context, recID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductRecommendation{}, recID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// base側・recommended側の両方向を消す（商品カスケード削除用）
func (r *RecommendationGormRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("base_product_id = ? OR recommended_product_id = ?", productID, productID).
		Delete(&model.ProductRecommendation{}).Error
}
