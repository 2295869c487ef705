package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`

	ShopID uuid.UUID `gorm:"type:uuid;index;not null" json:"shop_id"`
	Shop   Shop      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AuthorID uuid.UUID `gorm:"type:uuid;index;not null" json:"author_id"`

	// BookingID ties the comment to a specific visit. Dedupe runs per
	// (booking, author) when set, per (shop, author) when not.
	BookingID *uuid.UUID `gorm:"type:uuid;index" json:"booking_id"`

	Rating      int    `gorm:"not null" json:"rating"`
	Description string `gorm:"size:1000" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
