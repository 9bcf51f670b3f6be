package repository

import (
	"context"
	"errors"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"

	"gorm.io/gorm"
)

type ImageGormRepository struct {
	db *gorm.DB
}

// DI
func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

// 対象商品に属する画像だけを返す
func (r *ImageGormRepository) FindByIDForProduct(ctx context.Context, imageID int64, productID int64) (model.ProductImage, error) {
	var img model.ProductImage

	err := r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", imageID, productID).
		First(&img).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ImageGormRepository) CreateBulk(ctx context.Context, images []model.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *ImageGormRepository) DeleteByID(ctx context.Context, imageID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductImage{}, imageID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品カスケード削除用。0件でもエラーにしない。
func (r *ImageGormRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImage{}).Error
}
