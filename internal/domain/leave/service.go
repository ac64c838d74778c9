package leave

import "context"

// LeaveService defines leave request operations.
type LeaveService interface {
	// ListTypes returns the leave type catalog ordered by name
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	// Submit validates and stores a new pending request for the user
	Submit(ctx context.Context, userID string, req SubmitLeaveRequest) (*LeaveRequestResponse, error)

	// ListMine returns the user's own requests, newest first
	ListMine(ctx context.Context, userID string) ([]LeaveRequestResponse, error)

	// ListAll returns all requests for the admin view
	ListAll(ctx context.Context, filter ListRequestsFilter) ([]LeaveRequestResponse, error)

	// Approve marks a pending request approved and materializes one leave
	// attendance row per day of the range, atomically. A request that is no
	// longer pending fails with ErrLeaveAlreadyProcessed.
	Approve(ctx context.Context, requestID string, reviewerID string, req ReviewLeaveRequest) (*LeaveRequestResponse, error)

	// Reject marks a pending request rejected. Attendance is untouched.
	Reject(ctx context.Context, requestID string, reviewerID string, req ReviewLeaveRequest) (*LeaveRequestResponse, error)
}
