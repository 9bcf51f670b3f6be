package model

// カートの明細。variant単位で持ち、数量は正の整数。
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64 `gorm:"not null;index" json:"cart_id"`
	VariantID int64 `gorm:"not null;index" json:"variant_id"`
	Quantity  int64 `gorm:"not null;default:1" json:"quantity"`
}
