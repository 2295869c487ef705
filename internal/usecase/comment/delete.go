package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/identity"
)

type DeleteComment struct {
	repo domain.Repository
}

func NewDeleteComment(repo domain.Repository) *DeleteComment {
	return &DeleteComment{repo: repo}
}

func (uc *DeleteComment) Execute(
	ctx context.Context,
	tenantID string,
	commentID uuid.UUID,
	callerID uuid.UUID,
	callerRole identity.Role,
) error {

	cm, err := uc.repo.GetComment(ctx, tenantID, commentID)
	if err != nil {
		return httperr.ErrBusiness("comment_not_found")
	}

	if cm.AuthorID != callerID && !callerRole.CanModerateComments() {
		return httperr.ErrBusiness("forbidden")
	}

	return uc.repo.DeleteComment(ctx, cm)
}
