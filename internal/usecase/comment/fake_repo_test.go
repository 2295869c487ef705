package comment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/models"
)

type discardSink struct{}

func (discardSink) Dispatch(logstore.Entry) {}

var errNotFound = errors.New("not found")

// fakeRepo is an in-memory domain.Repository.
type fakeRepo struct {
	shops       map[uuid.UUID]*models.Shop
	bookings    map[uuid.UUID]*models.Booking
	comments    map[uuid.UUID]*models.Comment
	replies     map[uuid.UUID]*models.CommentReply
	moderations map[uuid.UUID]*models.ReplyModeration // keyed by reply id
	history     []models.ReplyHistory
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:       make(map[uuid.UUID]*models.Shop),
		bookings:    make(map[uuid.UUID]*models.Booking),
		comments:    make(map[uuid.UUID]*models.Comment),
		replies:     make(map[uuid.UUID]*models.CommentReply),
		moderations: make(map[uuid.UUID]*models.ReplyModeration),
	}
}

func (f *fakeRepo) GetShop(_ context.Context, tenantID string, shopID uuid.UUID) (*models.Shop, error) {
	if s, ok := f.shops[shopID]; ok && s.TenantID == tenantID {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetBooking(_ context.Context, tenantID string, bookingID uuid.UUID) (*models.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok && b.TenantID == tenantID {
		return b, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) FindCommentByBookingAuthor(_ context.Context, tenantID string, bookingID, authorID uuid.UUID) (*models.Comment, error) {
	for _, cm := range f.comments {
		if cm.TenantID == tenantID && cm.BookingID != nil &&
			*cm.BookingID == bookingID && cm.AuthorID == authorID {
			return cm, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) FindCommentByShopAuthor(_ context.Context, tenantID string, shopID, authorID uuid.UUID) (*models.Comment, error) {
	for _, cm := range f.comments {
		if cm.TenantID == tenantID && cm.ShopID == shopID &&
			cm.AuthorID == authorID && cm.BookingID == nil {
			return cm, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateComment(_ context.Context, cm *models.Comment) error {
	cm.ID = uuid.New()
	f.comments[cm.ID] = cm
	return nil
}

func (f *fakeRepo) GetComment(_ context.Context, tenantID string, commentID uuid.UUID) (*models.Comment, error) {
	if cm, ok := f.comments[commentID]; ok && cm.TenantID == tenantID {
		return cm, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListComments(_ context.Context, tenantID string, shopID *uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	for _, cm := range f.comments {
		if cm.TenantID != tenantID {
			continue
		}
		if shopID != nil && cm.ShopID != *shopID {
			continue
		}
		out = append(out, *cm)
	}
	return out, nil
}

func (f *fakeRepo) UpdateComment(_ context.Context, cm *models.Comment) error {
	if _, ok := f.comments[cm.ID]; !ok {
		return errNotFound
	}
	f.comments[cm.ID] = cm
	return nil
}

func (f *fakeRepo) DeleteComment(_ context.Context, cm *models.Comment) error {
	delete(f.comments, cm.ID)
	return nil
}

func (f *fakeRepo) GetReplyByComment(_ context.Context, tenantID string, commentID uuid.UUID) (*models.CommentReply, error) {
	for _, r := range f.replies {
		if r.TenantID == tenantID && r.CommentID == commentID {
			return r, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetReply(_ context.Context, tenantID string, replyID uuid.UUID) (*models.CommentReply, error) {
	if r, ok := f.replies[replyID]; ok && r.TenantID == tenantID {
		return r, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateReply(_ context.Context, reply *models.CommentReply, moderation *models.ReplyModeration) error {
	reply.ID = uuid.New()
	f.replies[reply.ID] = reply

	moderation.ReplyID = reply.ID
	f.moderations[reply.ID] = moderation
	return nil
}

func (f *fakeRepo) ReplaceReplyText(_ context.Context, reply *models.CommentReply, previousText string, editedBy uuid.UUID) error {
	if _, ok := f.replies[reply.ID]; !ok {
		return errNotFound
	}

	f.history = append(f.history, models.ReplyHistory{
		ID:           uuid.New(),
		TenantID:     reply.TenantID,
		ReplyID:      reply.ID,
		PreviousText: previousText,
		EditedBy:     editedBy,
	})
	f.replies[reply.ID] = reply

	if m, ok := f.moderations[reply.ID]; ok {
		m.Status = "pending"
		m.Reason = ""
		m.ModeratorID = nil
	}
	return nil
}

func (f *fakeRepo) GetModeration(_ context.Context, tenantID string, replyID uuid.UUID) (*models.ReplyModeration, error) {
	if m, ok := f.moderations[replyID]; ok && m.TenantID == tenantID {
		return m, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateModeration(_ context.Context, m *models.ReplyModeration) error {
	f.moderations[m.ReplyID] = m
	return nil
}

func (f *fakeRepo) ListHistory(_ context.Context, tenantID string, replyID uuid.UUID) ([]models.ReplyHistory, error) {
	var out []models.ReplyHistory
	for _, h := range f.history {
		if h.TenantID == tenantID && h.ReplyID == replyID {
			out = append(out, h)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
