package booking

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/booking"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	tenantID string,
	shopID *uuid.UUID,
	staffID *uuid.UUID,
	date string,
) ([]models.Booking, error) {

	if date != "" && !domain.ValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListBookings(ctx, tenantID, shopID, staffID, date)
}

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	tenantID string,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, tenantID, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return b, nil
}
