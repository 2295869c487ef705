package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/models"
)

type ModerateReplyInput struct {
	TenantID string
	ReplyID  uuid.UUID

	ModeratorID uuid.UUID
	Status      string
	Reason      string
}

type ModerateReply struct {
	repo domain.Repository
}

func NewModerateReply(repo domain.Repository) *ModerateReply {
	return &ModerateReply{repo: repo}
}

func (uc *ModerateReply) Execute(
	ctx context.Context,
	in ModerateReplyInput,
) (*models.ReplyModeration, error) {

	status, err := domain.ParseModerationStatus(in.Status)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetReply(ctx, in.TenantID, in.ReplyID); err != nil {
		return nil, httperr.ErrBusiness("reply_not_found")
	}

	m, err := uc.repo.GetModeration(ctx, in.TenantID, in.ReplyID)
	if err != nil {
		return nil, httperr.ErrBusiness("reply_not_found")
	}

	m.Status = string(status)
	m.Reason = in.Reason
	moderator := in.ModeratorID
	m.ModeratorID = &moderator

	if err := uc.repo.UpdateModeration(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}
