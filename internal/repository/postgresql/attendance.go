package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// UpsertCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertCheckIn(ctx context.Context, userID string, date time.Time, checkIn time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (id, user_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date)
		DO UPDATE SET check_in = EXCLUDED.check_in, status = EXCLUDED.status
		RETURNING id, user_id, date, check_in, check_out, status, created_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.NewString(), userID, date, checkIn, attendance.StatusPresent,
	).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status, &att.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, userID string, date time.Time, checkOut time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET check_out = $3
		WHERE user_id = $1 AND date = $2
	`

	tag, err := q.Exec(ctx, query, userID, date, checkOut)
	if err != nil {
		return 0, fmt.Errorf("failed to set check-out: %w", err)
	}

	return tag.RowsAffected(), nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, status, created_at
		FROM attendance
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status, &att.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &att, nil
}

// ListByUserBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, status, created_at
		FROM attendance
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var list []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status, &att.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		list = append(list, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return list, nil
}

// ListAllBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListAllBetween(ctx context.Context, start, end time.Time, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.status, a.created_at,
		       p.first_name, p.last_name, p.employee_id, p.department
		FROM attendance a
		JOIN profiles p ON p.user_id = a.user_id
		WHERE a.date >= $1 AND a.date <= $2
	`)

	args := []interface{}{start, end}
	if userID != "" {
		args = append(args, userID)
		sb.WriteString(fmt.Sprintf(" AND a.user_id = $%d", len(args)))
	}
	sb.WriteString(" ORDER BY a.date DESC, p.first_name ASC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list all attendance: %w", err)
	}
	defer rows.Close()

	var list []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status, &att.CreatedAt,
			&att.FirstName, &att.LastName, &att.EmployeeID, &att.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		list = append(list, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return list, nil
}

// UpsertLeaveDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertLeaveDay(ctx context.Context, userID string, date time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (id, user_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date)
		DO UPDATE SET status = EXCLUDED.status
	`

	if _, err := q.Exec(ctx, query, uuid.NewString(), userID, date, attendance.StatusLeave); err != nil {
		return fmt.Errorf("failed to upsert leave day: %w", err)
	}

	return nil
}

// CountByStatusOn implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatusOn(ctx context.Context, date time.Time, status attendance.Status) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`

	var count int64
	if err := q.QueryRow(ctx, query, date, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return count, nil
}
