package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// UpsertCheckIn inserts today's record or overwrites check_in and status
	// on the existing (user_id, date) row
	UpsertCheckIn(ctx context.Context, userID string, date time.Time, checkIn time.Time) (Attendance, error)

	// SetCheckOut stamps check_out on an existing row. Returns the number of
	// rows updated so the caller can tell a missing check-in apart.
	SetCheckOut(ctx context.Context, userID string, date time.Time, checkOut time.Time) (int64, error)

	// GetByUserAndDate returns nil when no record exists for that day
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// ListByUserBetween returns the user's records in [start, end], newest date first
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Attendance, error)

	// ListAllBetween returns all records in [start, end] with profile fields
	// joined, optionally filtered to one user, newest date first
	ListAllBetween(ctx context.Context, start, end time.Time, userID string) ([]Attendance, error)

	// UpsertLeaveDay marks one day as leave for a user, preserving nothing
	// from a prior row except its identity
	UpsertLeaveDay(ctx context.Context, userID string, date time.Time) error

	// CountByStatusOn counts records with the given status on a date
	CountByStatusOn(ctx context.Context, date time.Time, status Status) (int64, error)
}
