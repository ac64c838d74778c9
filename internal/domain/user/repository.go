package user

import "context"

// UserRoleRepository defines data access for role assignments.
type UserRoleRepository interface {
	// GetRoleByUserID returns the role assigned to a user
	GetRoleByUserID(ctx context.Context, userID string) (Role, error)
}
