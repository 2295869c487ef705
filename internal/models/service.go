package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`
	ShopID   uuid.UUID `gorm:"type:uuid;index;not null" json:"shop_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
