package payroll

import "context"

// PayrollRepository defines data access for salary structures.
type PayrollRepository interface {
	// GetByUserID returns nil when the user has no payroll row yet
	GetByUserID(ctx context.Context, userID string) (*Payroll, error)

	// GetByID retrieves one payroll row by primary key
	GetByID(ctx context.Context, id string) (Payroll, error)

	// ListWithProfiles returns all payroll rows with profile fields joined,
	// most recently updated first
	ListWithProfiles(ctx context.Context) ([]Payroll, error)

	// Update writes the amounts, recomputed net salary and effective date
	Update(ctx context.Context, p Payroll) error
}
