package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/kuaforun/booking-backend/internal/models"
)

type Repository interface {
	// -------- Shop / staff / services --------
	GetShop(
		ctx context.Context,
		tenantID string,
		shopID uuid.UUID,
	) (*models.Shop, error)

	GetStaff(
		ctx context.Context,
		tenantID string,
		shopID uuid.UUID,
		staffID uuid.UUID,
	) (*models.Staff, error)

	GetServices(
		ctx context.Context,
		tenantID string,
		shopID uuid.UUID,
		serviceIDs []uuid.UUID,
	) ([]models.Service, error)

	// -------- Conflict scope --------
	ListActiveForStaffDay(
		ctx context.Context,
		tenantID string,
		staffID uuid.UUID,
		date string,
	) ([]models.Booking, error)

	ListActiveForShopDay(
		ctx context.Context,
		tenantID string,
		shopID uuid.UUID,
		date string,
	) ([]models.Booking, error)

	// -------- Create / state change --------

	// CreateWithConflictCheck re-runs the overlap check and inserts in a
	// single serializable transaction; a losing concurrent writer gets
	// time_conflict.
	CreateWithConflictCheck(
		ctx context.Context,
		b *models.Booking,
		services []models.BookingService,
	) error

	GetBooking(
		ctx context.Context,
		tenantID string,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing --------
	ListBookings(
		ctx context.Context,
		tenantID string,
		shopID *uuid.UUID,
		staffID *uuid.UUID,
		date string,
	) ([]models.Booking, error)
}
