package profile

import "context"

// ProfileRepository defines data access for employee profiles.
type ProfileRepository interface {
	// GetByUserID retrieves a profile by the auth user ID
	GetByUserID(ctx context.Context, userID string) (Profile, error)

	// List returns all profiles ordered by first name, with roles joined
	List(ctx context.Context) ([]Profile, error)

	// UpdateContact updates the self-editable fields (phone, address)
	UpdateContact(ctx context.Context, userID string, phone, address string) error

	// UpdateByAdmin updates department, position, phone and address on the
	// profile row with the given primary key
	UpdateByAdmin(ctx context.Context, profileID string, req AdminUpdateProfileRequest) error

	// Count returns the total number of profiles
	Count(ctx context.Context) (int64, error)
}
