package models

// Role is the coarse permission tag the platform assigns to every account.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAgent  Role = "agent"
	RoleAdmin  Role = "admin"
)

// CanBid reports whether accounts with this role may place bids.
func (r Role) CanBid() bool {
	return r == RoleBuyer || r == RoleAdmin
}

// CanPublish reports whether accounts with this role may create listings.
func (r Role) CanPublish() bool {
	return r == RoleSeller || r == RoleAgent || r == RoleAdmin
}

// CanModerate reports whether accounts with this role may manage listings
// they do not own.
func (r Role) CanModerate() bool {
	return r == RoleAdmin
}

// Known reports whether the role is one of the platform's enumeration.
// Unknown roles carry no permissions but are still displayed raw.
func (r Role) Known() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAgent, RoleAdmin:
		return true
	}
	return false
}
