package model

import "time"

// カート。session_id（呼び出し側が発行）で一意に特定する。
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"session_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}
