package model

// 商品画像。colorは任意（色違い画像用）。
type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"not null;index" json:"product_id"`
	Color     string `gorm:"type:varchar(50)" json:"color"`
	ImageURL  string `gorm:"type:varchar(255);not null" json:"image_url"`
}
