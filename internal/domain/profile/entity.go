package profile

import "time"

// Profile is one row of the profiles table, keyed by the auth user ID.
type Profile struct {
	ID             string
	UserID         string
	EmployeeID     string
	FirstName      string
	LastName       string
	Email          string
	Phone          *string
	Address        *string
	Department     *string
	Position       *string
	HireDate       *time.Time
	ProfilePicture *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined from user_roles on directory listings
	Role *string
}
