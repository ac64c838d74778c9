package user

import "errors"

var (
	ErrInvalidToken        = errors.New("Invalid or missing token")
	ErrAdminAccessRequired = errors.New("Admin access required")
	ErrRoleNotFound        = errors.New("User role not found")
)
