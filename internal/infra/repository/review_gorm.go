package repository

import (
	"context"

	"shortshop/internal/domain/model"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) List(ctx context.Context, skip int, limit int) ([]model.ProductReview, error) {
	var reviews []model.ProductReview

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return []model.ProductReview{}, err
	}

	return reviews, nil
}

func (r *ReviewGormRepository) Create(ctx context.Context, review model.ProductReview) (model.ProductReview, error) {
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return model.ProductReview{}, err
	}
	return review, nil
}

// 商品カスケード削除用。0件でもエラーにしない。
func (r *ReviewGormRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductReview{}).Error
}
