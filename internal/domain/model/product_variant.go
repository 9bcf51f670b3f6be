package model

// サイズの固定enum
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// enum外のサイズは永続化前に弾く
func IsValidSize(s Size) bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL:
		return true
	default:
		return false
	}
}

// 商品の色・サイズ・在庫の組み合わせ
type ProductVariant struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"not null;index" json:"product_id"`
	Color     string `gorm:"type:varchar(50);not null" json:"color"`
	Size      Size   `gorm:"type:varchar(10);not null" json:"size"`
	InStock   bool   `gorm:"not null;default:false" json:"in_stock"`
}
