package user

import "time"

// Role enum, mirrors the user_roles.role column
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

type UserRole struct {
	ID        string
	UserID    string
	Role      Role
	CreatedAt time.Time
}
