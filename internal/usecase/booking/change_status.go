package booking

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/booking"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/models"
)

type ChangeStatus struct {
	repo domain.Repository
	logs logstore.Sink
}

func NewChangeStatus(repo domain.Repository, logs logstore.Sink) *ChangeStatus {
	return &ChangeStatus{repo: repo, logs: logs}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	tenantID string,
	bookingID uuid.UUID,
	newStatus string,
) (*models.Booking, error) {

	to, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, tenantID, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanTransition(domain.Status(b.Status), to); err != nil {
		return nil, err
	}

	b.Status = string(to)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.logs.Dispatch(logstore.Entry{
		TenantID: tenantID,
		Level:    "info",
		Service:  "booking",
		Message:  "booking status changed",
		Context:  map[string]any{"booking_id": b.ID.String(), "status": b.Status},
	})

	return b, nil
}
