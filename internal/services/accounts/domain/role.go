package domain

// Role is the ordered moderation role of an account
type Role string

// Roles form a lattice: none < mod < admin
const (
	RoleNone  Role = "none"
	RoleMod   Role = "mod"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool { return r == RoleNone || r == RoleMod || r == RoleAdmin }

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleMod:
		return 1
	}
	return 0
}

// AtLeast reports whether r carries at least the privileges of other.
// Admin implies mod; demoting below mod clears admin
func (r Role) AtLeast(other Role) bool { return r.rank() >= other.rank() }

// RoleOf folds the stored mod/admin flags into a single role
func RoleOf(mod, admin bool) Role {
	switch {
	case admin:
		return RoleAdmin
	case mod:
		return RoleMod
	}
	return RoleNone
}

// Flags expands a role back to the stored mod/admin pair
func (r Role) Flags() (mod, admin bool) {
	return r.AtLeast(RoleMod), r.AtLeast(RoleAdmin)
}
