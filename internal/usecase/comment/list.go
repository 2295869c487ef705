package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/models"
)

type ListComments struct {
	repo domain.Repository
}

func NewListComments(repo domain.Repository) *ListComments {
	return &ListComments{repo: repo}
}

func (uc *ListComments) Execute(
	ctx context.Context,
	tenantID string,
	shopID *uuid.UUID,
) ([]models.Comment, error) {
	return uc.repo.ListComments(ctx, tenantID, shopID)
}
