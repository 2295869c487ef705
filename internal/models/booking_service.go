package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingService struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;uniqueIndex:idx_booking_service,priority:3;not null" json:"tenant_id"`

	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_booking_service,priority:1;not null" json:"booking_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_booking_service,priority:2;not null" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	// Price is the service price captured at booking time.
	Price float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
