package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/identity"
	"github.com/kuaforun/booking-backend/internal/models"
)

type UpdateCommentInput struct {
	TenantID  string
	CommentID uuid.UUID

	CallerID   uuid.UUID
	CallerRole identity.Role

	Rating      *int
	Description *string
}

type UpdateComment struct {
	repo domain.Repository
}

func NewUpdateComment(repo domain.Repository) *UpdateComment {
	return &UpdateComment{repo: repo}
}

func (uc *UpdateComment) Execute(
	ctx context.Context,
	in UpdateCommentInput,
) (*models.Comment, error) {

	cm, err := uc.repo.GetComment(ctx, in.TenantID, in.CommentID)
	if err != nil {
		return nil, httperr.ErrBusiness("comment_not_found")
	}

	if cm.AuthorID != in.CallerID && !in.CallerRole.CanModerateComments() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, httperr.ErrBusiness("invalid_rating")
		}
		cm.Rating = *in.Rating
	}
	if in.Description != nil {
		cm.Description = *in.Description
	}

	if err := uc.repo.UpdateComment(ctx, cm); err != nil {
		return nil, err
	}

	return cm, nil
}
