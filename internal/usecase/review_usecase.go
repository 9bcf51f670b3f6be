package usecase

import (
	"context"
	"net/http"
	"unicode/utf8"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"
)

type ReviewUsecase struct {
	productRepo repo.ProductRepository
	reviewRepo  repo.ReviewRepository
}

// DI
func NewReviewUsecase(productRepo repo.ProductRepository, reviewRepo repo.ReviewRepository) *ReviewUsecase {
	return &ReviewUsecase{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

type ReviewResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorName  string `json:"author_name"`
	Score       int    `json:"score"`
}

type CreateReviewInput struct {
	ProductID   int64
	Title       string
	Description string
	AuthorName  string
	Score       int
}

func (u *ReviewUsecase) List(ctx context.Context, skip int, limit int) ([]ReviewResponse, error) {
	if skip < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if limit < 1 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	reviews, err := u.reviewRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, toReviewResponse(r))
	}
	return resp, nil
}

func (u *ReviewUsecase) Create(ctx context.Context, in CreateReviewInput) (ReviewResponse, error) {
	//文字数で数える
	if n := utf8.RuneCountInString(in.Title); n < 10 || n > 120 {
		return ReviewResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "title must be 10-120 characters")
	}
	if n := utf8.RuneCountInString(in.Description); n < 20 || n > 300 {
		return ReviewResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "description must be 20-300 characters")
	}
	if in.AuthorName == "" {
		return ReviewResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "author_name must not be empty")
	}
	if in.Score < 1 || in.Score > 5 {
		return ReviewResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "score must be between 1 and 5")
	}

	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		if err == repo.ErrNotFound {
			return ReviewResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return ReviewResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.reviewRepo.Create(ctx, model.ProductReview{
		ProductID:   in.ProductID,
		Title:       in.Title,
		Description: in.Description,
		AuthorName:  in.AuthorName,
		Score:       in.Score,
	})
	if err != nil {
		return ReviewResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toReviewResponse(created), nil
}

func toReviewResponse(r model.ProductReview) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Title:       r.Title,
		Description: r.Description,
		AuthorName:  r.AuthorName,
		Score:       r.Score,
	}
}
