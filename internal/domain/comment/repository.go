package comment

import (
	"context"

	"github.com/google/uuid"
	"github.com/kuaforun/booking-backend/internal/models"
)

type Repository interface {
	// -------- Comments --------
	GetShop(
		ctx context.Context,
		tenantID string,
		shopID uuid.UUID,
	) (*models.Shop, error)

	GetBooking(
		ctx context.Context,
		tenantID string,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	FindCommentByBookingAuthor(
		ctx context.Context,
		tenantID string,
		bookingID uuid.UUID,
		authorID uuid.UUID,
	) (*models.Comment, error)

	FindCommentByShopAuthor(
		ctx context.Context,
		tenantID string,
		shopID uuid.UUID,
		authorID uuid.UUID,
	) (*models.Comment, error)

	CreateComment(ctx context.Context, cm *models.Comment) error

	GetComment(
		ctx context.Context,
		tenantID string,
		commentID uuid.UUID,
	) (*models.Comment, error)

	ListComments(
		ctx context.Context,
		tenantID string,
		shopID *uuid.UUID,
	) ([]models.Comment, error)

	UpdateComment(ctx context.Context, cm *models.Comment) error
	DeleteComment(ctx context.Context, cm *models.Comment) error

	// -------- Replies --------
	GetReplyByComment(
		ctx context.Context,
		tenantID string,
		commentID uuid.UUID,
	) (*models.CommentReply, error)

	GetReply(
		ctx context.Context,
		tenantID string,
		replyID uuid.UUID,
	) (*models.CommentReply, error)

	CreateReply(
		ctx context.Context,
		reply *models.CommentReply,
		moderation *models.ReplyModeration,
	) error

	// ReplaceReplyText appends one history row with the superseded text,
	// applies the new text and resets moderation to pending, atomically.
	ReplaceReplyText(
		ctx context.Context,
		reply *models.CommentReply,
		previousText string,
		editedBy uuid.UUID,
	) error

	GetModeration(
		ctx context.Context,
		tenantID string,
		replyID uuid.UUID,
	) (*models.ReplyModeration, error)

	UpdateModeration(ctx context.Context, m *models.ReplyModeration) error

	ListHistory(
		ctx context.Context,
		tenantID string,
		replyID uuid.UUID,
	) ([]models.ReplyHistory, error)
}
