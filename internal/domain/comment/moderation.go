package comment

import "github.com/kuaforun/booking-backend/internal/httperr"

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

func ParseModerationStatus(s string) (ModerationStatus, error) {
	switch ModerationStatus(s) {
	case ModerationPending, ModerationApproved, ModerationRejected:
		return ModerationStatus(s), nil
	}
	return "", httperr.ErrBusiness("invalid_moderation_status")
}

// InitialModeration is the state of a freshly created reply; any later
// edit of the reply text forces the state back here for re-approval.
func InitialModeration() ModerationStatus {
	return ModerationPending
}

// PubliclyVisible: customers only ever see approved replies.
func (s ModerationStatus) PubliclyVisible() bool {
	return s == ModerationApproved
}
