package booking

import "github.com/kuaforun/booking-backend/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// transitions is the full set of allowed status moves.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// CanTransition validates a status move; terminal states allow none.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}

// Active reports whether a booking in this status still occupies its
// time range for conflict purposes.
func (s Status) Active() bool {
	return s != StatusCancelled
}
