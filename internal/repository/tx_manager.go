package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Variants() VariantRepository
	Images() ImageRepository
	Recommendations() RecommendationRepository
	Reviews() ReviewRepository
	Carts() CartRepository
	CartItems() CartItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
