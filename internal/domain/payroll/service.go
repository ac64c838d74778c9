package payroll

import "context"

// PayrollService defines payroll operations.
type PayrollService interface {
	// GetMine returns the caller's salary structure, nil when none exists
	GetMine(ctx context.Context, userID string) (*PayrollResponse, error)

	// List returns every employee's payroll with profile info. Admin only.
	List(ctx context.Context) ([]PayrollResponse, error)

	// Update edits the amounts for one payroll row, recomputing net salary
	// and stamping the effective date to today. Admin only.
	Update(ctx context.Context, payrollID string, req UpdatePayrollRequest) (*PayrollResponse, error)
}
