package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/identity"
	"github.com/kuaforun/booking-backend/internal/models"
)

// ReplyView is a reply together with its moderation state. State is
// only exposed to privileged readers.
type ReplyView struct {
	Reply  *models.CommentReply `json:"reply"`
	Status string               `json:"status,omitempty"`
	Reason string               `json:"reason,omitempty"`
}

type GetReply struct {
	repo domain.Repository
}

func NewGetReply(repo domain.Repository) *GetReply {
	return &GetReply{repo: repo}
}

func (uc *GetReply) Execute(
	ctx context.Context,
	tenantID string,
	commentID uuid.UUID,
	viewer identity.Role,
) (*ReplyView, error) {

	if _, err := uc.repo.GetComment(ctx, tenantID, commentID); err != nil {
		return nil, httperr.ErrBusiness("comment_not_found")
	}

	reply, err := uc.repo.GetReplyByComment(ctx, tenantID, commentID)
	if err != nil {
		return nil, httperr.ErrBusiness("reply_not_found")
	}

	m, err := uc.repo.GetModeration(ctx, tenantID, reply.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("reply_not_found")
	}

	status := domain.ModerationStatus(m.Status)

	if viewer.CanSeeAnyReply() {
		return &ReplyView{Reply: reply, Status: m.Status, Reason: m.Reason}, nil
	}

	// Public readers: an unapproved reply does not exist.
	if !status.PubliclyVisible() {
		return nil, httperr.ErrBusiness("reply_not_found")
	}

	return &ReplyView{Reply: reply}, nil
}
