package leave

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
	"github.com/peoplehub/hrm-backend-go/internal/repository/postgresql"
)

type leaveServiceImpl struct {
	db               *database.DB
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
	now              func() time.Time
	runInTx          func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
) leave.LeaveService {
	return &leaveServiceImpl{
		db:               db,
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		now:              time.Now,
		runInTx:          postgresql.WithTransaction,
	}
}

// ListTypes implements leave.LeaveService.
func (l *leaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := l.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, leave.ToTypeResponse(t))
	}
	return out, nil
}

// Submit implements leave.LeaveService.
func (l *leaveServiceImpl) Submit(ctx context.Context, userID string, req leave.SubmitLeaveRequest) (*leave.LeaveRequestResponse, error) {
	// Validation runs to completion before anything is written
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := l.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		return nil, err
	}

	start, _ := validator.ParseDate(req.StartDate)
	end, _ := validator.ParseDate(req.EndDate)

	newRequest := leave.LeaveRequest{
		UserID:      userID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Status:      leave.RequestStatusPending,
	}
	if req.Remarks != "" {
		newRequest.Remarks = &req.Remarks
	}

	created, err := l.leaveRequestRepo.Create(ctx, newRequest)
	if err != nil {
		return nil, err
	}

	resp := leave.ToRequestResponse(created)
	return &resp, nil
}

// ListMine implements leave.LeaveService.
func (l *leaveServiceImpl) ListMine(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error) {
	list, err := l.leaveRequestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return leave.ToRequestResponseList(list), nil
}

// ListAll implements leave.LeaveService.
func (l *leaveServiceImpl) ListAll(ctx context.Context, filter leave.ListRequestsFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := l.leaveRequestRepo.ListAll(ctx, leave.RequestStatus(filter.Status))
	if err != nil {
		return nil, err
	}
	return leave.ToRequestResponseList(list), nil
}

// Approve implements leave.LeaveService.
func (l *leaveServiceImpl) Approve(ctx context.Context, requestID string, reviewerID string, req leave.ReviewLeaveRequest) (*leave.LeaveRequestResponse, error) {
	request, err := l.leaveRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// A request leaves pending exactly once
	if request.Status != leave.RequestStatusPending {
		return nil, leave.ErrLeaveAlreadyProcessed
	}
	if request.EndDate.Before(request.StartDate) {
		return nil, leave.ErrInvalidDateRange
	}

	reviewedAt := l.now()
	request.Status = leave.RequestStatusApproved
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	if req.AdminComment != "" {
		request.AdminComment = &req.AdminComment
	}

	// The review update and the per-day attendance rows commit together or
	// not at all. A failed day rolls back the approval entirely.
	err = l.runInTx(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := l.leaveRequestRepo.UpdateReview(txCtx, request); err != nil {
			return err
		}

		for d := request.StartDate; !d.After(request.EndDate); d = d.AddDate(0, 0, 1) {
			if err := l.attendanceRepo.UpsertLeaveDay(txCtx, request.UserID, d); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := leave.ToRequestResponse(request)
	return &resp, nil
}

// Reject implements leave.LeaveService.
func (l *leaveServiceImpl) Reject(ctx context.Context, requestID string, reviewerID string, req leave.ReviewLeaveRequest) (*leave.LeaveRequestResponse, error) {
	request, err := l.leaveRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != leave.RequestStatusPending {
		return nil, leave.ErrLeaveAlreadyProcessed
	}

	reviewedAt := l.now()
	request.Status = leave.RequestStatusRejected
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	if req.AdminComment != "" {
		request.AdminComment = &req.AdminComment
	}

	if err := l.leaveRequestRepo.UpdateReview(ctx, request); err != nil {
		return nil, err
	}

	resp := leave.ToRequestResponse(request)
	return &resp, nil
}
