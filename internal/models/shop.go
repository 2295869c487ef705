package models

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex" json:"slug"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`

	// Gender is the shop's service category: male, female or unisex.
	Gender string `gorm:"size:10;default:'unisex'" json:"gender"`

	City      string  `gorm:"size:100;index" json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Staff    []Staff     `gorm:"constraint:OnDelete:CASCADE;" json:"staff,omitempty"`
	Services []Service   `gorm:"constraint:OnDelete:CASCADE;" json:"services,omitempty"`
	Hours    []ShopHours `gorm:"constraint:OnDelete:CASCADE;" json:"hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
