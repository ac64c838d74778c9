package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, leave_type_id, start_date, end_date, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		req.UserID,
		req.LeaveTypeID,
		req.StartDate,
		req.EndDate,
		req.Status,
		req.Remarks,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type_id, start_date, end_date, status,
		       admin_comment, reviewed_by, reviewed_at, remarks, created_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.LeaveTypeID, &req.StartDate, &req.EndDate, &req.Status,
		&req.AdminComment, &req.ReviewedBy, &req.ReviewedAt, &req.Remarks, &req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.status,
		       lr.admin_comment, lr.reviewed_by, lr.reviewed_at, lr.remarks, lr.created_at,
		       lt.name
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.user_id = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var list []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveTypeID, &req.StartDate, &req.EndDate, &req.Status,
			&req.AdminComment, &req.ReviewedBy, &req.ReviewedAt, &req.Remarks, &req.CreatedAt,
			&req.LeaveTypeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		list = append(list, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave request rows: %w", err)
	}

	return list, nil
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListAll(ctx context.Context, status leave.RequestStatus) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.status,
		       lr.admin_comment, lr.reviewed_by, lr.reviewed_at, lr.remarks, lr.created_at,
		       lt.name, p.first_name, p.last_name, p.employee_id
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		JOIN profiles p ON p.user_id = lr.user_id
	`

	args := []interface{}{}
	if status != "" {
		query += " WHERE lr.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}
	defer rows.Close()

	var list []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveTypeID, &req.StartDate, &req.EndDate, &req.Status,
			&req.AdminComment, &req.ReviewedBy, &req.ReviewedAt, &req.Remarks, &req.CreatedAt,
			&req.LeaveTypeName, &req.FirstName, &req.LastName, &req.EmployeeID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		list = append(list, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave request rows: %w", err)
	}

	return list, nil
}

// UpdateReview implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateReview(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, admin_comment = $3, reviewed_by = $4, reviewed_at = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.AdminComment, req.ReviewedBy, req.ReviewedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// CountPendingByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CountPendingByUser(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM leave_requests WHERE user_id = $1 AND status = $2`

	var count int64
	if err := q.QueryRow(ctx, query, userID, leave.RequestStatusPending).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	return count, nil
}

// CountPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM leave_requests WHERE status = $1`

	var count int64
	if err := q.QueryRow(ctx, query, leave.RequestStatusPending).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	return count, nil
}
