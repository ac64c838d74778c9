package leave

import "time"

// RequestStatus enum, mirrors the leave_requests.status column
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// IsValid reports whether the status is one of the known values.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

type LeaveType struct {
	ID          string
	Name        string
	Description *string
	DaysPerYear int
}

// LeaveRequest is one row of the leave_requests table. Status moves from
// pending to exactly one of approved or rejected, never back.
type LeaveRequest struct {
	ID           string
	UserID       string
	LeaveTypeID  string
	StartDate    time.Time
	EndDate      time.Time
	Status       RequestStatus
	AdminComment *string
	ReviewedBy   *string
	ReviewedAt   *time.Time
	Remarks      *string
	CreatedAt    time.Time

	// Joined fields
	LeaveTypeName *string
	FirstName     *string
	LastName      *string
	EmployeeID    *string
}

// Days returns the inclusive day count of the request.
func (r LeaveRequest) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
