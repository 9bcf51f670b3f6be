package model

// 商品から商品への推薦（有向エッジ）。
// エッジ自身のIDで削除する（ペアではなく）。
type ProductRecommendation struct {
	ID                   int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	BaseProductID        int64 `gorm:"not null;index" json:"base_product_id"`
	RecommendedProductID int64 `gorm:"not null;index" json:"recommended_product_id"`
}
