package models

import (
	"time"

	"github.com/google/uuid"
)

// LogRecord is immutable once written; only the retention sweep removes rows.
type LogRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`

	Level   string `gorm:"size:10;index;not null" json:"level"`
	Service string `gorm:"size:50;index" json:"service"`
	Message string `gorm:"size:2000;not null" json:"message"`

	Context string `gorm:"type:text" json:"context,omitempty"`

	CorrelationID string `gorm:"size:100" json:"correlation_id,omitempty"`
	RequestID     string `gorm:"size:100" json:"request_id,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
