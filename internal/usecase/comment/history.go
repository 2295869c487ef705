package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/models"
)

type GetReplyHistory struct {
	repo domain.Repository
}

func NewGetReplyHistory(repo domain.Repository) *GetReplyHistory {
	return &GetReplyHistory{repo: repo}
}

func (uc *GetReplyHistory) Execute(
	ctx context.Context,
	tenantID string,
	commentID uuid.UUID,
) ([]models.ReplyHistory, error) {

	reply, err := uc.repo.GetReplyByComment(ctx, tenantID, commentID)
	if err != nil {
		return nil, httperr.ErrBusiness("reply_not_found")
	}

	return uc.repo.ListHistory(ctx, tenantID, reply.ID)
}
