package comment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/identity"
	"github.com/kuaforun/booking-backend/internal/models"
)

func seedComment(repo *fakeRepo, shopID uuid.UUID) *models.Comment {
	cm := &models.Comment{
		ID:       uuid.New(),
		TenantID: testTenant,
		ShopID:   shopID,
		AuthorID: uuid.New(),
		Rating:   4,
	}
	repo.comments[cm.ID] = cm
	return cm
}

func TestUpsertReply(t *testing.T) {
	ctx := context.Background()

	t.Run("first reply starts pending", func(t *testing.T) {
		repo := newFakeRepo()
		cm := seedComment(repo, seedShop(repo))
		uc := NewUpsertReply(repo, discardSink{})

		reply, err := uc.Execute(ctx, testTenant, cm.ID, uuid.New(), "thanks!")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}

		m := repo.moderations[reply.ID]
		if m == nil || m.Status != "pending" {
			t.Fatalf("moderation = %+v, want pending", m)
		}
		if len(repo.history) != 0 {
			t.Errorf("first reply must not produce history rows")
		}
	})

	t.Run("edit archives text and resets moderation", func(t *testing.T) {
		repo := newFakeRepo()
		cm := seedComment(repo, seedShop(repo))
		uc := NewUpsertReply(repo, discardSink{})
		barber := uuid.New()

		reply, err := uc.Execute(ctx, testTenant, cm.ID, barber, "first version")
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		// moderation approves it
		repo.moderations[reply.ID].Status = "approved"

		if _, err := uc.Execute(ctx, testTenant, cm.ID, barber, "second version"); err != nil {
			t.Fatalf("edit: %v", err)
		}

		if got := repo.moderations[reply.ID].Status; got != "pending" {
			t.Errorf("moderation after edit = %q, want pending", got)
		}
		if len(repo.history) != 1 {
			t.Fatalf("history rows = %d, want exactly 1", len(repo.history))
		}
		if repo.history[0].PreviousText != "first version" {
			t.Errorf("history text = %q, want the pre-edit text", repo.history[0].PreviousText)
		}
		if repo.replies[reply.ID].Text != "second version" {
			t.Errorf("reply text = %q, want the new text", repo.replies[reply.ID].Text)
		}
	})

	t.Run("empty text rejected", func(t *testing.T) {
		repo := newFakeRepo()
		cm := seedComment(repo, seedShop(repo))
		uc := NewUpsertReply(repo, discardSink{})

		_, err := uc.Execute(ctx, testTenant, cm.ID, uuid.New(), "")
		if !httperr.IsBusiness(err, "empty_reply") {
			t.Fatalf("expected empty_reply, got %v", err)
		}
	})

	t.Run("missing comment", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewUpsertReply(repo, discardSink{})

		_, err := uc.Execute(ctx, testTenant, uuid.New(), uuid.New(), "hello")
		if !httperr.IsBusiness(err, "comment_not_found") {
			t.Fatalf("expected comment_not_found, got %v", err)
		}
	})
}

func TestGetReplyVisibility(t *testing.T) {
	ctx := context.Background()

	setup := func(status string) (*fakeRepo, uuid.UUID) {
		repo := newFakeRepo()
		cm := seedComment(repo, seedShop(repo))
		uc := NewUpsertReply(repo, discardSink{})
		reply, err := uc.Execute(ctx, testTenant, cm.ID, uuid.New(), "hi")
		if err != nil {
			t.Fatalf("seed reply: %v", err)
		}
		repo.moderations[reply.ID].Status = status
		return repo, cm.ID
	}

	t.Run("customer only sees approved", func(t *testing.T) {
		for _, status := range []string{"pending", "rejected"} {
			repo, commentID := setup(status)
			uc := NewGetReply(repo)

			_, err := uc.Execute(ctx, testTenant, commentID, identity.RoleCustomer)
			if !httperr.IsBusiness(err, "reply_not_found") {
				t.Errorf("status %s: customer got %v, want reply_not_found", status, err)
			}
		}

		repo, commentID := setup("approved")
		uc := NewGetReply(repo)
		view, err := uc.Execute(ctx, testTenant, commentID, identity.RoleCustomer)
		if err != nil {
			t.Fatalf("approved reply: %v", err)
		}
		if view.Status != "" {
			t.Errorf("public view must not leak moderation state, got %q", view.Status)
		}
	})

	t.Run("privileged roles see any state tagged", func(t *testing.T) {
		for _, role := range []identity.Role{identity.RoleBarber, identity.RoleManager, identity.RoleOwner} {
			repo, commentID := setup("pending")
			uc := NewGetReply(repo)

			view, err := uc.Execute(ctx, testTenant, commentID, role)
			if err != nil {
				t.Fatalf("role %s: %v", role, err)
			}
			if view.Status != "pending" {
				t.Errorf("role %s: status = %q, want pending", role, view.Status)
			}
		}
	})
}

func TestGetReplyHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("accumulates in edit order", func(t *testing.T) {
		repo := newFakeRepo()
		cm := seedComment(repo, seedShop(repo))
		upsert := NewUpsertReply(repo, discardSink{})
		barber := uuid.New()

		for _, text := range []string{"v1", "v2", "v3"} {
			if _, err := upsert.Execute(ctx, testTenant, cm.ID, barber, text); err != nil {
				t.Fatalf("upsert %q: %v", text, err)
			}
		}

		uc := NewGetReplyHistory(repo)
		rows, err := uc.Execute(ctx, testTenant, cm.ID)
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("history rows = %d, want 2", len(rows))
		}
		if rows[0].PreviousText != "v1" || rows[1].PreviousText != "v2" {
			t.Errorf("history out of order: %q, %q", rows[0].PreviousText, rows[1].PreviousText)
		}
	})

	t.Run("no reply yet", func(t *testing.T) {
		repo := newFakeRepo()
		cm := seedComment(repo, seedShop(repo))
		uc := NewGetReplyHistory(repo)

		_, err := uc.Execute(ctx, testTenant, cm.ID)
		if !httperr.IsBusiness(err, "reply_not_found") {
			t.Fatalf("expected reply_not_found, got %v", err)
		}
	})
}

func TestModerateReply(t *testing.T) {
	ctx := context.Background()

	t.Run("approve and reject", func(t *testing.T) {
		repo := newFakeRepo()
		cm := seedComment(repo, seedShop(repo))
		upsert := NewUpsertReply(repo, discardSink{})
		reply, err := upsert.Execute(ctx, testTenant, cm.ID, uuid.New(), "hi")
		if err != nil {
			t.Fatalf("seed reply: %v", err)
		}

		uc := NewModerateReply(repo)

		m, err := uc.Execute(ctx, ModerateReplyInput{
			TenantID:    testTenant,
			ReplyID:     reply.ID,
			ModeratorID: uuid.New(),
			Status:      "approved",
		})
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		if m.Status != "approved" {
			t.Errorf("status = %q, want approved", m.Status)
		}

		m, err = uc.Execute(ctx, ModerateReplyInput{
			TenantID:    testTenant,
			ReplyID:     reply.ID,
			ModeratorID: uuid.New(),
			Status:      "rejected",
			Reason:      "tone",
		})
		if err != nil {
			t.Fatalf("reject: %v", err)
		}
		if m.Reason != "tone" {
			t.Errorf("reason = %q, want tone", m.Reason)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewModerateReply(repo)

		_, err := uc.Execute(ctx, ModerateReplyInput{
			TenantID: testTenant,
			ReplyID:  uuid.New(),
			Status:   "hidden",
		})
		if !httperr.IsBusiness(err, "invalid_moderation_status") {
			t.Fatalf("expected invalid_moderation_status, got %v", err)
		}
	})

	t.Run("unknown reply", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewModerateReply(repo)

		_, err := uc.Execute(ctx, ModerateReplyInput{
			TenantID: testTenant,
			ReplyID:  uuid.New(),
			Status:   "approved",
		})
		if !httperr.IsBusiness(err, "reply_not_found") {
			t.Fatalf("expected reply_not_found, got %v", err)
		}
	})
}
