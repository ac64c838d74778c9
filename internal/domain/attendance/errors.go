package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("Attendance record not found")
	ErrNotCheckedIn       = errors.New("No check-in recorded for today")
)
