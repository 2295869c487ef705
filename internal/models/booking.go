package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`

	ShopID uuid.UUID `gorm:"type:uuid;index;not null" json:"shop_id"`
	Shop   Shop      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// StaffID is nullable: a booking may be taken for the shop in general
	// and assigned to a staff member later.
	StaffID *uuid.UUID `gorm:"type:uuid;index" json:"staff_id"`
	Staff   *Staff     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// CustomerID is an identity managed by the upstream auth service.
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`

	// Date is the service day (YYYY-MM-DD); StartTime/EndTime are
	// wall-clock HH:MM, interpreted as the half-open range [start, end).
	Date      string `gorm:"size:10;index;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Status     string  `gorm:"size:20;default:'pending'" json:"status"`
	TotalPrice float64 `json:"total_price"`

	Services []BookingService `gorm:"constraint:OnDelete:CASCADE;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
