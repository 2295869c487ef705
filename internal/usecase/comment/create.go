package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCommentInput struct {
	TenantID string
	AuthorID uuid.UUID

	ShopID      uuid.UUID
	Rating      int
	Description string

	// BookingID switches dedupe from (shop, author) to (booking, author)
	// and must then name a booking by the same author at the same shop.
	BookingID *uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateComment struct {
	repo domain.Repository
	logs logstore.Sink
}

func NewCreateComment(repo domain.Repository, logs logstore.Sink) *CreateComment {
	return &CreateComment{repo: repo, logs: logs}
}

func (uc *CreateComment) Execute(
	ctx context.Context,
	in CreateCommentInput,
) (*models.Comment, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	shop, err := uc.repo.GetShop(ctx, in.TenantID, in.ShopID)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	if in.BookingID != nil {
		b, err := uc.repo.GetBooking(ctx, in.TenantID, *in.BookingID)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_booking")
		}
		if b.CustomerID != in.AuthorID || b.ShopID != shop.ID {
			return nil, httperr.ErrBusiness("invalid_booking")
		}

		if _, err := uc.repo.FindCommentByBookingAuthor(
			ctx, in.TenantID, *in.BookingID, in.AuthorID,
		); err == nil {
			return nil, httperr.ErrBusiness("duplicate_comment")
		}
	} else {
		if _, err := uc.repo.FindCommentByShopAuthor(
			ctx, in.TenantID, in.ShopID, in.AuthorID,
		); err == nil {
			return nil, httperr.ErrBusiness("duplicate_comment")
		}
	}

	cm := &models.Comment{
		TenantID:    in.TenantID,
		ShopID:      shop.ID,
		AuthorID:    in.AuthorID,
		BookingID:   in.BookingID,
		Rating:      in.Rating,
		Description: in.Description,
	}

	// The unique partial indexes close the race between check and
	// insert; the repository maps that hit back to duplicate_comment.
	if err := uc.repo.CreateComment(ctx, cm); err != nil {
		return nil, err
	}

	uc.logs.Dispatch(logstore.Entry{
		TenantID: in.TenantID,
		Level:    "info",
		Service:  "comments",
		Message:  "comment created",
		Context:  map[string]any{"comment_id": cm.ID.String(), "shop_id": shop.ID.String()},
	})

	return cm, nil
}
