package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/booking"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	TenantID   string
	ShopID     uuid.UUID
	StaffID    *uuid.UUID
	CustomerID uuid.UUID

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM

	ServiceIDs []uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
	logs logstore.Sink
}

func NewCreateBooking(repo domain.Repository, logs logstore.Sink) *CreateBooking {
	return &CreateBooking{repo: repo, logs: logs}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMin, err := domain.ParseHM(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("services_required")
	}

	shop, err := uc.repo.GetShop(ctx, in.TenantID, in.ShopID)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	if in.StaffID != nil {
		staff, err := uc.repo.GetStaff(ctx, in.TenantID, in.ShopID, *in.StaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		if !staff.Active {
			return nil, httperr.ErrBusiness("staff_inactive")
		}
	}

	services, err := uc.repo.GetServices(ctx, in.TenantID, in.ShopID, in.ServiceIDs)
	if err != nil || len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	var durationMin int
	var total float64
	for _, s := range services {
		durationMin += s.DurationMin
		total += s.Price
	}
	if durationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	endMin := startMin + durationMin
	if endMin > 24*60 {
		return nil, httperr.ErrBusiness("crosses_midnight")
	}

	// First conflict pass; the repository re-checks inside a serializable
	// transaction on insert, so a lost race still ends in time_conflict.
	existing, err := uc.listConflictScope(ctx, in)
	if err != nil {
		return nil, err
	}

	cand := domain.Candidate{
		TenantID: in.TenantID,
		ShopID:   in.ShopID,
		StaffID:  in.StaffID,
		Date:     in.Date,
		StartMin: startMin,
		EndMin:   endMin,
	}
	if err := domain.CheckConflict(cand, existing); err != nil {
		return nil, err
	}

	b := &models.Booking{
		TenantID:   in.TenantID,
		ShopID:     shop.ID,
		StaffID:    in.StaffID,
		CustomerID: in.CustomerID,
		Date:       in.Date,
		StartTime:  formatHM(startMin),
		EndTime:    formatHM(endMin),
		Status:     string(domain.InitialStatus()),
		TotalPrice: total,
	}

	lines := make([]models.BookingService, 0, len(services))
	for _, s := range services {
		lines = append(lines, models.BookingService{
			TenantID:  in.TenantID,
			ServiceID: s.ID,
			Price:     s.Price,
		})
	}

	if err := uc.repo.CreateWithConflictCheck(ctx, b, lines); err != nil {
		return nil, err
	}

	uc.logs.Dispatch(logstore.Entry{
		TenantID: in.TenantID,
		Level:    "info",
		Service:  "booking",
		Message:  "booking created",
		Context:  map[string]any{"booking_id": b.ID.String(), "shop_id": shop.ID.String()},
	})

	return b, nil
}

func (uc *CreateBooking) listConflictScope(
	ctx context.Context,
	in CreateBookingInput,
) ([]models.Booking, error) {
	if in.StaffID != nil {
		return uc.repo.ListActiveForStaffDay(ctx, in.TenantID, *in.StaffID, in.Date)
	}
	return uc.repo.ListActiveForShopDay(ctx, in.TenantID, in.ShopID, in.Date)
}

func formatHM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
