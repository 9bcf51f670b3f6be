package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品。Variants / Images / Recommendations / Reviews を所有する。
// 削除時のカスケードはサービス層（usecase + TxManager）で行う。
type Product struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string          `gorm:"type:varchar(120);not null" json:"name"`
	Price             decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description       string          `gorm:"type:text;not null" json:"description"`
	LifetimeGuarantee bool            `gorm:"not null;default:true" json:"lifetime_guarantee"`
	CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants"`
	Images   []ProductImage   `gorm:"foreignKey:ProductID" json:"images"`
}
