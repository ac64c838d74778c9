package attendance

import "context"

// AttendanceService defines attendance operations. The acting user is always
// an explicit parameter, handlers resolve it from the verified token.
type AttendanceService interface {
	// CheckIn records (or re-records) today's check-in for the user
	CheckIn(ctx context.Context, userID string) (*AttendanceResponse, error)

	// CheckOut stamps today's check-out. Fails with ErrNotCheckedIn when no
	// record exists for today, nothing is created in that case.
	CheckOut(ctx context.Context, userID string) (*AttendanceResponse, error)

	// GetToday returns today's record, nil when the user has none
	GetToday(ctx context.Context, userID string) (*AttendanceResponse, error)

	// ListMine returns the user's history for an inclusive date range
	ListMine(ctx context.Context, userID string, req PeriodRequest) ([]AttendanceResponse, error)

	// ListAll returns every employee's records for a range plus daily stats
	// for the range's start date. Admin only, enforced at the router.
	ListAll(ctx context.Context, req AdminPeriodRequest) (*AdminListResponse, error)
}
