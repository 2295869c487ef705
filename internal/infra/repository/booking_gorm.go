package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/kuaforun/booking-backend/internal/domain/booking"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Shop / staff / services
// --------------------------------------------------

func (r *BookingGormRepository) GetShop(
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

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	tenantID string,
	shopID uuid.UUID,
	staffID uuid.UUID,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ? AND tenant_id = ?", staffID, shopID, tenantID).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *BookingGormRepository) GetServices(
	ctx context.Context,
	tenantID string,
	shopID uuid.UUID,
	serviceIDs []uuid.UUID,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND shop_id = ? AND tenant_id = ? AND active = true",
			serviceIDs, shopID, tenantID).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Conflict scope
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveForStaffDay(
	ctx context.Context,
	tenantID string,
	staffID uuid.UUID,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND staff_id = ? AND date = ? AND status <> 'cancelled'",
			tenantID, staffID, date).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListActiveForShopDay(
	ctx context.Context,
	tenantID string,
	shopID uuid.UUID,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND shop_id = ? AND date = ? AND status <> 'cancelled'",
			tenantID, shopID, date).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Create / state change
// --------------------------------------------------

// CreateWithConflictCheck re-runs the overlap check and inserts inside
// one SERIALIZABLE transaction. Row locks alone cannot close the
// check-then-insert race on an empty day (nothing to lock), so the
// isolation level does it: when two writers race for the same slot,
// Postgres aborts one with a serialization failure, which we surface as
// time_conflict.
func (r *BookingGormRepository) CreateWithConflictCheck(
	ctx context.Context,
	b *models.Booking,
	services []models.BookingService,
) error {

	startMin, err := domain.ParseHM(b.StartTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	endMin, err := domain.ParseHM(b.EndTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.Model(&models.Booking{}).
			Where("tenant_id = ? AND date = ? AND status <> 'cancelled'", b.TenantID, b.Date)

		if b.StaffID != nil {
			q = q.Where("staff_id = ?", *b.StaffID)
		} else {
			q = q.Where("shop_id = ?", b.ShopID)
		}

		var existing []models.Booking
		if err := q.Find(&existing).Error; err != nil {
			return err
		}

		cand := domain.Candidate{
			TenantID: b.TenantID,
			ShopID:   b.ShopID,
			StaffID:  b.StaffID,
			Date:     b.Date,
			StartMin: startMin,
			EndMin:   endMin,
		}
		if err := domain.CheckConflict(cand, existing); err != nil {
			return err
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		for i := range services {
			services[i].BookingID = b.ID
		}
		if len(services) > 0 {
			if err := tx.Create(&services).Error; err != nil {
				if isUniqueViolation(err) {
					return httperr.ErrBusiness("duplicate_service")
				}
				return err
			}
		}

		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if isSerializationFailure(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	tenantID string,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ? AND tenant_id = ?", bookingID, tenantID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	tenantID string,
	shopID *uuid.UUID,
	staffID *uuid.UUID,
	date string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Services").
		Where("tenant_id = ?", tenantID)

	if shopID != nil {
		q = q.Where("shop_id = ?", *shopID)
	}
	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
