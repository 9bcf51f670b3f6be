package usecase

import (
	"context"
	"fmt"
	"net/http"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"
)

type ImageUsecase struct {
	productRepo repo.ProductRepository
	imageRepo   repo.ImageRepository
}

// DI
func NewImageUsecase(productRepo repo.ProductRepository, imageRepo repo.ImageRepository) *ImageUsecase {
	return &ImageUsecase{
		productRepo: productRepo,
		imageRepo:   imageRepo,
	}
}

// 画像を一括追加する。空リストは400。
func (u *ImageUsecase) Add(ctx context.Context, productID int64, in []CreateImageInput) (MessageResponse, error) {
	if productID <= 0 {
		return MessageResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if len(in) == 0 {
		return MessageResponse{}, NewHTTPError(http.StatusBadRequest, "no images provided")
	}
	for _, img := range in {
		if err := validateImageInput(img); err != nil {
			return MessageResponse{}, err
		}
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return MessageResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return MessageResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	images := make([]model.ProductImage, 0, len(in))
	for _, img := range in {
		images = append(images, model.ProductImage{
			ProductID: productID,
			Color:     img.Color,
			ImageURL:  img.ImageURL,
		})
	}
	if err := u.imageRepo.CreateBulk(ctx, images); err != nil {
		return MessageResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageResponse{Message: fmt.Sprintf("%d image(s) added successfully", len(in))}, nil
}

// 指定商品に属する画像だけ削除できる
func (u *ImageUsecase) Delete(ctx context.Context, productID int64, imageID int64) error {
	if productID <= 0 || imageID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.imageRepo.FindByIDForProduct(ctx, imageID, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "image not found for this product")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.imageRepo.DeleteByID(ctx, imageID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "image not found for this product")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
