package attendance

import "time"

// Status enum, mirrors the attendance.status column
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Attendance is one row of the attendance table. At most one row exists
// per (user_id, date).
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Status    Status
	CreatedAt time.Time

	// Joined profile fields, populated on admin listings only
	FirstName  *string
	LastName   *string
	EmployeeID *string
	Department *string
}
