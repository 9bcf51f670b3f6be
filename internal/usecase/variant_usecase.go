package usecase

import (
	"context"
	"net/http"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"
)

type VariantUsecase struct {
	productRepo repo.ProductRepository
	variantRepo repo.VariantRepository
	txm         repo.TransactionManager
}

// DI
func NewVariantUsecase(
	productRepo repo.ProductRepository,
	variantRepo repo.VariantRepository,
	txm repo.TransactionManager,
) *VariantUsecase {
	return &VariantUsecase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		txm:         txm,
	}
}

func (u *VariantUsecase) Add(ctx context.Context, productID int64, in CreateVariantInput) (VariantResponse, error) {
	if productID <= 0 {
		return VariantResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateVariantInput(in); err != nil {
		return VariantResponse{}, err
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return VariantResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return VariantResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.variantRepo.Create(ctx, model.ProductVariant{
		ProductID: productID,
		Color:     in.Color,
		Size:      model.Size(in.Size),
		InStock:   in.InStock,
	})
	if err != nil {
		return VariantResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toVariantResponse(created), nil
}

// color/size/in_stockの全置換
func (u *VariantUsecase) Update(ctx context.Context, variantID int64, in CreateVariantInput) (VariantResponse, error) {
	if variantID <= 0 {
		return VariantResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant id")
	}
	if err := validateVariantInput(in); err != nil {
		return VariantResponse{}, err
	}

	v, err := u.variantRepo.FindByID(ctx, variantID)
	if err == repo.ErrNotFound {
		return VariantResponse{}, NewHTTPError(http.StatusNotFound, "variant not found")
	}
	if err != nil {
		return VariantResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	v.Color = in.Color
	v.Size = model.Size(in.Size)
	v.InStock = in.InStock

	if err := u.variantRepo.Update(ctx, v); err != nil {
		if err == repo.ErrNotFound {
			return VariantResponse{}, NewHTTPError(http.StatusNotFound, "variant not found")
		}
		return VariantResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toVariantResponse(v), nil
}

// variant削除はそれを参照するcart明細も巻き込んで消す
func (u *VariantUsecase) Delete(ctx context.Context, variantID int64) error {
	if variantID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid variant id")
	}

	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Variants().FindByID(ctx, variantID); err != nil {
			return err
		}
		if err := r.CartItems().DeleteByVariantIDs(ctx, []int64{variantID}); err != nil {
			return err
		}
		return r.Variants().DeleteByID(ctx, variantID)
	})

	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "variant not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
