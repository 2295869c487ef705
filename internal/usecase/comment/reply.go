package comment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/comment"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/models"
)

// UpsertReply implements the create-or-replace reply semantics: the
// first call creates the reply with moderation pending, any later call
// archives the current text into history, swaps the text in and drops
// moderation back to pending for re-approval.
//
// The handler has already checked the caller holds the barber role.
// Whether that barber belongs to the comment's shop is not verified.
type UpsertReply struct {
	repo domain.Repository
	logs logstore.Sink
}

func NewUpsertReply(repo domain.Repository, logs logstore.Sink) *UpsertReply {
	return &UpsertReply{repo: repo, logs: logs}
}

func (uc *UpsertReply) Execute(
	ctx context.Context,
	tenantID string,
	commentID uuid.UUID,
	authorID uuid.UUID,
	text string,
) (*models.CommentReply, error) {

	if text == "" {
		return nil, httperr.ErrBusiness("empty_reply")
	}

	cm, err := uc.repo.GetComment(ctx, tenantID, commentID)
	if err != nil {
		return nil, httperr.ErrBusiness("comment_not_found")
	}

	existing, err := uc.repo.GetReplyByComment(ctx, tenantID, cm.ID)
	if err != nil {
		// first reply for this comment
		reply := &models.CommentReply{
			TenantID:  tenantID,
			CommentID: cm.ID,
			AuthorID:  authorID,
			Text:      text,
		}
		moderation := &models.ReplyModeration{
			TenantID: tenantID,
			Status:   string(domain.InitialModeration()),
		}
		if err := uc.repo.CreateReply(ctx, reply, moderation); err != nil {
			return nil, err
		}

		uc.logs.Dispatch(logstore.Entry{
			TenantID: tenantID,
			Level:    "info",
			Service:  "comments",
			Message:  "reply created",
			Context:  map[string]any{"reply_id": reply.ID.String()},
		})

		return reply, nil
	}

	previous := existing.Text
	existing.Text = text
	existing.AuthorID = authorID

	if err := uc.repo.ReplaceReplyText(ctx, existing, previous, authorID); err != nil {
		return nil, err
	}

	uc.logs.Dispatch(logstore.Entry{
		TenantID: tenantID,
		Level:    "info",
		Service:  "comments",
		Message:  "reply edited, moderation reset",
		Context:  map[string]any{"reply_id": existing.ID.String()},
	})

	return existing, nil
}
