package model

import "time"

// 商品レビュー。scoreは1〜5。
type ProductReview struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64     `gorm:"not null;index" json:"product_id"`
	Title       string    `gorm:"type:varchar(120);not null" json:"title"`
	Description string    `gorm:"type:varchar(300);not null" json:"description"`
	AuthorName  string    `gorm:"type:varchar(255);not null" json:"author_name"`
	Score       int       `gorm:"not null" json:"score"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
