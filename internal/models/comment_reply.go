package models

import (
	"time"

	"github.com/google/uuid"
)

type CommentReply struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`

	// One reply per comment; replying again replaces the text.
	CommentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AuthorID uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Text     string    `gorm:"size:1000;not null" json:"text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReplyModeration struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`

	ReplyID uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"reply_id"`
	Reply   CommentReply `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Status is one of: pending, approved, rejected. Any edit of the
	// reply text resets it to pending.
	Status      string     `gorm:"size:20;default:'pending'" json:"status"`
	Reason      string     `gorm:"size:255" json:"reason,omitempty"`
	ModeratorID *uuid.UUID `gorm:"type:uuid" json:"moderator_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReplyHistory is append-only: one row per edit, holding the text that
// the edit replaced.
type ReplyHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TenantID string    `gorm:"size:100;index;not null" json:"tenant_id"`

	ReplyID uuid.UUID    `gorm:"type:uuid;index;not null" json:"reply_id"`
	Reply   CommentReply `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PreviousText string    `gorm:"size:1000;not null" json:"previous_text"`
	EditedBy     uuid.UUID `gorm:"type:uuid" json:"edited_by"`

	CreatedAt time.Time `json:"created_at"`
}
