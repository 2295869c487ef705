package booking

import (
	"github.com/google/uuid"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/models"
)

// Candidate is a proposed booking slot, already parsed to minutes.
type Candidate struct {
	TenantID string
	ShopID   uuid.UUID
	StaffID  *uuid.UUID
	Date     string
	StartMin int
	EndMin   int
}

// CheckConflict decides whether the candidate may occupy its slot given
// the existing bookings for the same scope and day. The scope is
// staff+date when the candidate names a staff member, shop+date when it
// does not; in the shop-wide case existing unassigned bookings are not
// checked against each other, so they are skipped here.
//
// Cancelled bookings never block a slot. On collision the returned
// error carries the colliding booking's id.
func CheckConflict(cand Candidate, existing []models.Booking) error {
	for _, b := range existing {
		if !Status(b.Status).Active() {
			continue
		}
		if cand.StaffID == nil && b.StaffID == nil {
			continue
		}

		s, err := ParseHM(b.StartTime)
		if err != nil {
			continue
		}
		e, err := ParseHM(b.EndTime)
		if err != nil {
			continue
		}

		if Overlaps(cand.StartMin, cand.EndMin, s, e) {
			return httperr.ErrBusinessDetail("time_conflict", b.ID.String())
		}
	}

	return nil
}
