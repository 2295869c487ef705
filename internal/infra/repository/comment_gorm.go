package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/models"
)

type CommentGormRepository struct {
	db *gorm.DB
}

func NewCommentGormRepository(db *gorm.DB) *CommentGormRepository {
	return &CommentGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *CommentGormRepository) GetShop(
	ctx context.Context,
	tenantID string,
	shopID uuid.UUID,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", shopID, tenantID).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *CommentGormRepository) GetBooking(
	ctx context.Context,
	tenantID string,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", bookingID, tenantID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Comments
// --------------------------------------------------

func (r *CommentGormRepository) FindCommentByBookingAuthor(
	ctx context.Context,
	tenantID string,
	bookingID uuid.UUID,
	authorID uuid.UUID,
) (*models.Comment, error) {

	var cm models.Comment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND booking_id = ? AND author_id = ?",
			tenantID, bookingID, authorID).
		First(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *CommentGormRepository) FindCommentByShopAuthor(
	ctx context.Context,
	tenantID string,
	shopID uuid.UUID,
	authorID uuid.UUID,
) (*models.Comment, error) {

	var cm models.Comment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND shop_id = ? AND author_id = ? AND booking_id IS NULL",
			tenantID, shopID, authorID).
		First(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *CommentGormRepository) CreateComment(
	ctx context.Context,
	cm *models.Comment,
) error {
	if err := r.db.WithContext(ctx).Create(cm).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("duplicate_comment")
		}
		return err
	}
	return nil
}

func (r *CommentGormRepository) GetComment(
	ctx context.Context,
	tenantID string,
	commentID uuid.UUID,
) (*models.Comment, error) {

	var cm models.Comment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", commentID, tenantID).
		First(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *CommentGormRepository) ListComments(
	ctx context.Context,
	tenantID string,
	shopID *uuid.UUID,
) ([]models.Comment, error) {

	q := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if shopID != nil {
		q = q.Where("shop_id = ?", *shopID)
	}

	var comments []models.Comment
	if err := q.
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentGormRepository) UpdateComment(
	ctx context.Context,
	cm *models.Comment,
) error {
	return r.db.WithContext(ctx).Save(cm).Error
}

func (r *CommentGormRepository) DeleteComment(
	ctx context.Context,
	cm *models.Comment,
) error {
	return r.db.WithContext(ctx).Delete(cm).Error
}

// --------------------------------------------------
// Replies
// --------------------------------------------------

func (r *CommentGormRepository) GetReplyByComment(
	ctx context.Context,
	tenantID string,
	commentID uuid.UUID,
) (*models.CommentReply, error) {

	var reply models.CommentReply
	if err := r.db.WithContext(ctx).
		Where("comment_id = ? AND tenant_id = ?", commentID, tenantID).
		First(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *CommentGormRepository) GetReply(
	ctx context.Context,
	tenantID string,
	replyID uuid.UUID,
) (*models.CommentReply, error) {

	var reply models.CommentReply
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", replyID, tenantID).
		First(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *CommentGormRepository) CreateReply(
	ctx context.Context,
	reply *models.CommentReply,
	moderation *models.ReplyModeration,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			if isUniqueViolation(err) {
				return httperr.ErrBusiness("reply_exists")
			}
			return err
		}

		moderation.ReplyID = reply.ID
		return tx.Create(moderation).Error
	})
}

// ReplaceReplyText archives the superseded text, applies the edit and
// resets moderation to pending in one transaction. Exactly one history
// row is appended per edit.
func (r *CommentGormRepository) ReplaceReplyText(
	ctx context.Context,
	reply *models.CommentReply,
	previousText string,
	editedBy uuid.UUID,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		history := models.ReplyHistory{
			TenantID:     reply.TenantID,
			ReplyID:      reply.ID,
			PreviousText: previousText,
			EditedBy:     editedBy,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if err := tx.Save(reply).Error; err != nil {
			return err
		}

		return tx.Model(&models.ReplyModeration{}).
			Where("reply_id = ? AND tenant_id = ?", reply.ID, reply.TenantID).
			Updates(map[string]any{
				"status":       "pending",
				"reason":       "",
				"moderator_id": nil,
			}).Error
	})
}

func (r *CommentGormRepository) GetModeration(
	ctx context.Context,
	tenantID string,
	replyID uuid.UUID,
) (*models.ReplyModeration, error) {

	var m models.ReplyModeration
	if err := r.db.WithContext(ctx).
		Where("reply_id = ? AND tenant_id = ?", replyID, tenantID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CommentGormRepository) UpdateModeration(
	ctx context.Context,
	m *models.ReplyModeration,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CommentGormRepository) ListHistory(
	ctx context.Context,
	tenantID string,
	replyID uuid.UUID,
) ([]models.ReplyHistory, error) {

	var rows []models.ReplyHistory
	if err := r.db.WithContext(ctx).
		Where("reply_id = ? AND tenant_id = ?", replyID, tenantID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*CommentGormRepository)(nil)
