package models

import (
	"time"

	"github.com/google/uuid"
)

type ShopHours struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`
	ShopID   uuid.UUID `gorm:"type:uuid;index:idx_shop_weekday,priority:1;not null" json:"shop_id"`

	// Weekday follows time.Weekday: 0 = Sunday.
	Weekday int `gorm:"index:idx_shop_weekday,priority:2" json:"weekday"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	Closed    bool   `gorm:"default:false" json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
