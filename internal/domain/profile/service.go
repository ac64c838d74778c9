package profile

import "context"

// ProfileService defines profile operations.
type ProfileService interface {
	// GetMine returns the caller's profile
	GetMine(ctx context.Context, userID string) (*ProfileResponse, error)

	// UpdateMine updates the caller's phone and address
	UpdateMine(ctx context.Context, userID string, req UpdateMyProfileRequest) (*ProfileResponse, error)

	// List returns the employee directory with roles. Admin only.
	List(ctx context.Context) ([]ProfileResponse, error)

	// Update edits an employee's job and contact fields by profile ID. Admin only.
	Update(ctx context.Context, profileID string, req AdminUpdateProfileRequest) error
}
