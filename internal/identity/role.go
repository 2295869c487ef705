package identity

import "fmt"

// Role is the closed set of caller roles forwarded by the gateway.
// Unrecognized values are rejected at the boundary.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleBarber     Role = "barber"
	RoleCustomer   Role = "customer"
	RoleManager    Role = "manager"
	RoleOwner      Role = "owner"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSupervisor, RoleBarber, RoleCustomer, RoleManager, RoleOwner:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// CanReply: only barbers answer customer comments.
func (r Role) CanReply() bool {
	return r == RoleBarber
}

// CanModerate: managers and owners act on reply moderation.
func (r Role) CanModerate() bool {
	return r == RoleManager || r == RoleOwner
}

// CanSeeAnyReply: privileged readers see replies in every moderation
// state; everyone else only sees approved ones.
func (r Role) CanSeeAnyReply() bool {
	return r == RoleBarber || r == RoleManager || r == RoleOwner
}

// CanUseLogs: the log endpoints are internal; customers are shut out.
func (r Role) CanUseLogs() bool {
	return r != RoleCustomer
}

// CanManageShops: shop create/update is an operator action.
func (r Role) CanManageShops() bool {
	return r == RoleAdmin || r == RoleSupervisor || r == RoleOwner
}

// CanModerateComments: privileged comment mutation (any author).
func (r Role) CanModerateComments() bool {
	return r == RoleAdmin || r == RoleSupervisor
}
