package leave

import "context"

// LeaveTypeRepository reads the leave type catalog. The catalog is seeded
// reference data, nothing writes to it here.
type LeaveTypeRepository interface {
	List(ctx context.Context) ([]LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
}

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a new pending request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request without joins
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser returns the user's requests with leave type names joined,
	// newest submission first
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListAll returns every request with profile and leave type joins,
	// optionally filtered by status, newest submission first
	ListAll(ctx context.Context, status RequestStatus) ([]LeaveRequest, error)

	// UpdateReview writes the review outcome onto a request
	UpdateReview(ctx context.Context, req LeaveRequest) error

	// CountPendingByUser counts a user's pending requests
	CountPendingByUser(ctx context.Context, userID string) (int64, error)

	// CountPending counts all pending requests
	CountPending(ctx context.Context) (int64, error)
}
