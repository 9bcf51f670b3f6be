package repository

import (
	"context"
	"errors"

	"shortshop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// List / FindByID は Variants / Images を読み込んだ状態で返す。
type ProductRepository interface {
	List(ctx context.Context, skip int, limit int) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	DeleteByID(ctx context.Context, id int64) error
}
