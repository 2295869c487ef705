package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	domain "github.com/kuaforun/booking-backend/internal/domain/booking"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/models"
)

type discardSink struct{}

func (discardSink) Dispatch(logstore.Entry) {}

// fakeRepo is an in-memory domain.Repository.
type fakeRepo struct {
	shops    map[uuid.UUID]*models.Shop
	staff    map[uuid.UUID]*models.Staff
	services map[uuid.UUID]*models.Service
	bookings []*models.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:    make(map[uuid.UUID]*models.Shop),
		staff:    make(map[uuid.UUID]*models.Staff),
		services: make(map[uuid.UUID]*models.Service),
	}
}

var errNotFound = errors.New("not found")

func (f *fakeRepo) GetShop(_ context.Context, tenantID string, shopID uuid.UUID) (*models.Shop, error) {
	if s, ok := f.shops[shopID]; ok && s.TenantID == tenantID {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetStaff(_ context.Context, tenantID string, shopID, staffID uuid.UUID) (*models.Staff, error) {
	if s, ok := f.staff[staffID]; ok && s.TenantID == tenantID && s.ShopID == shopID {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetServices(_ context.Context, tenantID string, shopID uuid.UUID, ids []uuid.UUID) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := f.services[id]; ok && s.TenantID == tenantID && s.ShopID == shopID && s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveForStaffDay(_ context.Context, tenantID string, staffID uuid.UUID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.TenantID == tenantID && b.StaffID != nil && *b.StaffID == staffID &&
			b.Date == date && b.Status != "cancelled" {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveForShopDay(_ context.Context, tenantID string, shopID uuid.UUID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.TenantID == tenantID && b.ShopID == shopID &&
			b.Date == date && b.Status != "cancelled" {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateWithConflictCheck(ctx context.Context, b *models.Booking, _ []models.BookingService) error {
	startMin, _ := domain.ParseHM(b.StartTime)
	endMin, _ := domain.ParseHM(b.EndTime)

	var existing []models.Booking
	var err error
	if b.StaffID != nil {
		existing, err = f.ListActiveForStaffDay(ctx, b.TenantID, *b.StaffID, b.Date)
	} else {
		existing, err = f.ListActiveForShopDay(ctx, b.TenantID, b.ShopID, b.Date)
	}
	if err != nil {
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

	b.ID = uuid.New()
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, tenantID string, bookingID uuid.UUID) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.TenantID == tenantID && b.ID == bookingID {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i, cur := range f.bookings {
		if cur.ID == b.ID {
			f.bookings[i] = b
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListBookings(_ context.Context, tenantID string, shopID, staffID *uuid.UUID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.TenantID != tenantID {
			continue
		}
		if shopID != nil && b.ShopID != *shopID {
			continue
		}
		if staffID != nil && (b.StaffID == nil || *b.StaffID != *staffID) {
			continue
		}
		if date != "" && b.Date != date {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

const testTenant = "kuaforun"

func seed(repo *fakeRepo) (shopID, staffID, serviceID uuid.UUID) {
	shopID = uuid.New()
	staffID = uuid.New()
	serviceID = uuid.New()

	repo.shops[shopID] = &models.Shop{ID: shopID, TenantID: testTenant, Name: "Cut & Go"}
	repo.staff[staffID] = &models.Staff{
		ID: staffID, TenantID: testTenant, ShopID: shopID, Role: "barber", Active: true,
	}
	repo.services[serviceID] = &models.Service{
		ID: serviceID, TenantID: testTenant, ShopID: shopID,
		Name: "Haircut", DurationMin: 60, Price: 25, Active: true,
	}
	return shopID, staffID, serviceID
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending booking", func(t *testing.T) {
		repo := newFakeRepo()
		shopID, staffID, serviceID := seed(repo)
		uc := NewCreateBooking(repo, discardSink{})

		b, err := uc.Execute(ctx, CreateBookingInput{
			TenantID:   testTenant,
			ShopID:     shopID,
			StaffID:    &staffID,
			CustomerID: uuid.New(),
			Date:       "2026-09-01",
			StartTime:  "10:00",
			ServiceIDs: []uuid.UUID{serviceID},
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if b.Status != "pending" {
			t.Errorf("status = %q, want pending", b.Status)
		}
		if b.EndTime != "11:00" {
			t.Errorf("end time = %q, want 11:00 (60min service)", b.EndTime)
		}
		if b.TotalPrice != 25 {
			t.Errorf("total price = %v, want 25", b.TotalPrice)
		}
	})

	t.Run("rejects overlapping slot for same staff", func(t *testing.T) {
		repo := newFakeRepo()
		shopID, staffID, serviceID := seed(repo)
		uc := NewCreateBooking(repo, discardSink{})

		in := CreateBookingInput{
			TenantID:   testTenant,
			ShopID:     shopID,
			StaffID:    &staffID,
			CustomerID: uuid.New(),
			Date:       "2026-09-01",
			StartTime:  "10:00",
			ServiceIDs: []uuid.UUID{serviceID},
		}

		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("first booking: %v", err)
		}

		in.StartTime = "10:30"
		_, err := uc.Execute(ctx, in)
		if !httperr.IsBusiness(err, "time_conflict") {
			t.Fatalf("expected time_conflict, got %v", err)
		}
	})

	t.Run("allows back-to-back slots", func(t *testing.T) {
		repo := newFakeRepo()
		shopID, staffID, serviceID := seed(repo)
		uc := NewCreateBooking(repo, discardSink{})

		in := CreateBookingInput{
			TenantID:   testTenant,
			ShopID:     shopID,
			StaffID:    &staffID,
			CustomerID: uuid.New(),
			Date:       "2026-09-01",
			StartTime:  "10:00",
			ServiceIDs: []uuid.UUID{serviceID},
		}
		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("first booking: %v", err)
		}

		in.StartTime = "11:00"
		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("adjacent booking should pass: %v", err)
		}
	})

	t.Run("same slot with different staff is free", func(t *testing.T) {
		repo := newFakeRepo()
		shopID, staffID, serviceID := seed(repo)
		other := uuid.New()
		repo.staff[other] = &models.Staff{
			ID: other, TenantID: testTenant, ShopID: shopID, Role: "barber", Active: true,
		}
		uc := NewCreateBooking(repo, discardSink{})

		in := CreateBookingInput{
			TenantID:   testTenant,
			ShopID:     shopID,
			StaffID:    &staffID,
			CustomerID: uuid.New(),
			Date:       "2026-09-01",
			StartTime:  "10:00",
			ServiceIDs: []uuid.UUID{serviceID},
		}
		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("first booking: %v", err)
		}

		in.StaffID = &other
		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("different staff should not conflict: %v", err)
		}
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		repo := newFakeRepo()
		shopID, staffID, serviceID := seed(repo)
		uc := NewCreateBooking(repo, discardSink{})

		base := CreateBookingInput{
			TenantID:   testTenant,
			ShopID:     shopID,
			StaffID:    &staffID,
			CustomerID: uuid.New(),
			Date:       "2026-09-01",
			StartTime:  "10:00",
			ServiceIDs: []uuid.UUID{serviceID},
		}

		bad := base
		bad.Date = "01-09-2026"
		if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "invalid_date") {
			t.Errorf("bad date: got %v", err)
		}

		bad = base
		bad.StartTime = "24:61"
		if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "invalid_time") {
			t.Errorf("bad time: got %v", err)
		}

		bad = base
		bad.ServiceIDs = nil
		if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "services_required") {
			t.Errorf("no services: got %v", err)
		}

		bad = base
		bad.ShopID = uuid.New()
		if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "shop_not_found") {
			t.Errorf("missing shop: got %v", err)
		}

		bad = base
		unknown := uuid.New()
		bad.ServiceIDs = []uuid.UUID{unknown}
		if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "service_not_found") {
			t.Errorf("missing service: got %v", err)
		}
	})

	t.Run("booking ending exactly at midnight", func(t *testing.T) {
		repo := newFakeRepo()
		shopID, staffID, serviceID := seed(repo)
		uc := NewCreateBooking(repo, discardSink{})

		in := CreateBookingInput{
			TenantID:   testTenant,
			ShopID:     shopID,
			StaffID:    &staffID,
			CustomerID: uuid.New(),
			Date:       "2026-09-01",
			StartTime:  "23:00",
			ServiceIDs: []uuid.UUID{serviceID},
		}

		b, err := uc.Execute(ctx, in)
		if err != nil {
			t.Fatalf("23:00 + 60min booking: %v", err)
		}
		if b.EndTime != "24:00" {
			t.Fatalf("end time = %q, want 24:00", b.EndTime)
		}

		// the stored row must still block a later overlap
		in.StartTime = "23:30"
		_, err = uc.Execute(ctx, in)
		if !httperr.IsBusiness(err, "time_conflict") {
			t.Fatalf("expected time_conflict against midnight-ending booking, got %v", err)
		}

		// one minute past the boundary crosses into the next day
		in.StartTime = "23:30"
		longer := uuid.New()
		repo.services[longer] = &models.Service{
			ID: longer, TenantID: testTenant, ShopID: shopID,
			Name: "Cut & Beard", DurationMin: 90, Price: 40, Active: true,
		}
		in.ServiceIDs = []uuid.UUID{longer}
		_, err = uc.Execute(ctx, in)
		if !httperr.IsBusiness(err, "crosses_midnight") {
			t.Fatalf("expected crosses_midnight, got %v", err)
		}
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		repo := newFakeRepo()
		shopID, staffID, serviceID := seed(repo)
		uc := NewCreateBooking(repo, discardSink{})

		in := CreateBookingInput{
			TenantID:   testTenant,
			ShopID:     shopID,
			StaffID:    &staffID,
			CustomerID: uuid.New(),
			Date:       "2026-09-01",
			StartTime:  "10:00",
			ServiceIDs: []uuid.UUID{serviceID},
		}
		first, err := uc.Execute(ctx, in)
		if err != nil {
			t.Fatalf("first booking: %v", err)
		}

		first.Status = "cancelled"

		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("slot should be free after cancellation: %v", err)
		}
	})
}
