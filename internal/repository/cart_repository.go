package repository

import (
	"context"

	"shortshop/internal/domain/model"
)

type CartRepository interface {
	// Itemsを読み込んだ状態で返す
	FindBySessionID(ctx context.Context, sessionID string) (model.Cart, error)
	// 無ければ作る。cart-createとitem追加時の自動作成の両方で使う。
	GetOrCreateBySessionID(ctx context.Context, sessionID string) (model.Cart, error)
	// 明細を全削除する。カート自体は残る。
	Clear(ctx context.Context, cartID int64) error
}
