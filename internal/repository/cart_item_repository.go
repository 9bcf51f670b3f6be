package repository

import (
	"context"

	"shortshop/internal/domain/model"
)

type CartItemRepository interface {
	// そのカートに属する明細だけを返す（他カートの明細IDはErrNotFound）
	FindByIDInCart(ctx context.Context, cartItemID int64, cartID int64) (model.CartItem, error)
	FindByCartAndVariant(ctx context.Context, cartID int64, variantID int64) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// variant削除・商品カスケード削除用
	DeleteByVariantIDs(ctx context.Context, variantIDs []int64) error
}
