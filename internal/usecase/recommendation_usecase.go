package usecase

import (
	"context"
	"net/http"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"
)

type RecommendationUsecase struct {
	productRepo repo.ProductRepository
	recRepo     repo.RecommendationRepository
}

// DI
func NewRecommendationUsecase(
	productRepo repo.ProductRepository,
	recRepo repo.RecommendationRepository,
) *RecommendationUsecase {
	return &RecommendationUsecase{
		productRepo: productRepo,
		recRepo:     recRepo,
	}
}

type RecommendationResponse struct {
	ID                   int64 `json:"id"`
	BaseProductID        int64 `json:"base_product_id"`
	RecommendedProductID int64 `json:"recommended_product_id"`
}

// 自己参照と重複は400で弾く
func (u *RecommendationUsecase) Add(ctx context.Context, baseID int64, recommendedID int64) (MessageResponse, error) {
	if baseID <= 0 || recommendedID <= 0 {
		return MessageResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if baseID == recommendedID {
		return MessageResponse{}, NewHTTPError(http.StatusBadRequest, "cannot recommend the same product")
	}

	if _, err := u.productRepo.FindByID(ctx, baseID); err != nil {
		if err == repo.ErrNotFound {
			return MessageResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return MessageResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if _, err := u.productRepo.FindByID(ctx, recommendedID); err != nil {
		if err == repo.ErrNotFound {
			return MessageResponse{}, NewHTTPError(http.StatusNotFound, "recommended product not found")
		}
		return MessageResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	exists, err := u.recRepo.ExistsByPair(ctx, baseID, recommendedID)
	if err != nil {
		return MessageResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return MessageResponse{}, NewHTTPError(http.StatusBadRequest, "recommendation already exists")
	}

	if _, err := u.recRepo.Create(ctx, model.ProductRecommendation{
		BaseProductID:        baseID,
		RecommendedProductID: recommendedID,
	}); err != nil {
		return MessageResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageResponse{Message: "Recommendation added"}, nil
}

// base商品から出るエッジをそのまま返す
func (u *RecommendationUsecase) List(ctx context.Context, baseID int64) ([]RecommendationResponse, error) {
	if baseID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if _, err := u.productRepo.FindByID(ctx, baseID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	recs, err := u.recRepo.ListByBaseProductID(ctx, baseID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	resp := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, RecommendationResponse{
			ID:                   rec.ID,
			BaseProductID:        rec.BaseProductID,
			RecommendedProductID: rec.RecommendedProductID,
		})
	}
	return resp, nil
}

func (u *RecommendationUsecase) Delete(ctx context.Context, recommendationID int64) error {
	if recommendationID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid recommendation id")
	}

	err := u.recRepo.DeleteByID(ctx, recommendationID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "recommendation not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
