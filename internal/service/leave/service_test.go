package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type fakeLeaveTypeRepo struct {
	types map[string]leave.LeaveType
}

func (f *fakeLeaveTypeRepo) List(ctx context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, t := range f.types {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	if t, ok := f.types[id]; ok {
		return t, nil
	}
	return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
}

type fakeLeaveRequestRepo struct {
	requests    map[string]leave.LeaveRequest
	createCalls int
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.createCalls++
	req.ID = "req-created"
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if req, ok := f.requests[id]; ok {
		return req, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepo) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ListAll(ctx context.Context, status leave.RequestStatus) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) UpdateReview(ctx context.Context, req leave.LeaveRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[req.ID] = req
	return nil
}

func (f *fakeLeaveRequestRepo) CountPendingByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, req := range f.requests {
		if req.UserID == userID && req.Status == leave.RequestStatusPending {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeaveRequestRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	for _, req := range f.requests {
		if req.Status == leave.RequestStatusPending {
			count++
		}
	}
	return count, nil
}

// fakeAttendanceWriter records leave day upserts and can fail on demand.
type fakeAttendanceWriter struct {
	leaveDays []time.Time
	failOn    int // 1-based call number that fails, 0 never fails
	calls     int
}

func (f *fakeAttendanceWriter) UpsertLeaveDay(ctx context.Context, userID string, date time.Time) error {
	f.calls++
	if f.failOn != 0 && f.calls == f.failOn {
		return errors.New("write failed")
	}
	f.leaveDays = append(f.leaveDays, date)
	return nil
}

func (f *fakeAttendanceWriter) UpsertCheckIn(ctx context.Context, userID string, date time.Time, checkIn time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}

func (f *fakeAttendanceWriter) SetCheckOut(ctx context.Context, userID string, date time.Time, checkOut time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeAttendanceWriter) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceWriter) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceWriter) ListAllBetween(ctx context.Context, start, end time.Time, userID string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceWriter) CountByStatusOn(ctx context.Context, date time.Time, status attendance.Status) (int64, error) {
	return 0, nil
}

func newTestLeaveService(
	typeRepo *fakeLeaveTypeRepo,
	requestRepo *fakeLeaveRequestRepo,
	attendanceRepo *fakeAttendanceWriter,
	now time.Time,
) *leaveServiceImpl {
	return &leaveServiceImpl{
		leaveTypeRepo:    typeRepo,
		leaveRequestRepo: requestRepo,
		attendanceRepo:   attendanceRepo,
		now:              func() time.Time { return now },
		runInTx: func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
}

func defaultTypeRepo() *fakeLeaveTypeRepo {
	return &fakeLeaveTypeRepo{types: map[string]leave.LeaveType{
		"b3c9a1f0-5d2e-4b8a-9c1d-7e6f5a4b3c2d": {
			ID:          "b3c9a1f0-5d2e-4b8a-9c1d-7e6f5a4b3c2d",
			Name:        "Annual Leave",
			DaysPerYear: 12,
		},
	}}
}

func pendingRequest(start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:          "req-1",
		UserID:      "user-1",
		LeaveTypeID: "b3c9a1f0-5d2e-4b8a-9c1d-7e6f5a4b3c2d",
		StartDate:   start,
		EndDate:     end,
		Status:      leave.RequestStatusPending,
	}
}

func TestLeaveService_Submit_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	requestRepo := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, &fakeAttendanceWriter{}, time.Now())

	result, err := svc.Submit(ctx, "user-1", leave.SubmitLeaveRequest{
		LeaveTypeID: "b3c9a1f0-5d2e-4b8a-9c1d-7e6f5a4b3c2d",
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-03",
		Remarks:     "family trip",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusPending, result.Status)
	assert.Equal(t, 3, result.Days)
	assert.Equal(t, 1, requestRepo.createCalls)
}

func TestLeaveService_Submit_EndBeforeStart_NoWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	requestRepo := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, &fakeAttendanceWriter{}, time.Now())

	_, err := svc.Submit(ctx, "user-1", leave.SubmitLeaveRequest{
		LeaveTypeID: "b3c9a1f0-5d2e-4b8a-9c1d-7e6f5a4b3c2d",
		StartDate:   "2025-04-03",
		EndDate:     "2025-04-01",
	})

	// Validation fails before the store is touched
	assert.Error(t, err)
	assert.Equal(t, 0, requestRepo.createCalls)
}

func TestLeaveService_Submit_MissingFields_NoWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	requestRepo := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, &fakeAttendanceWriter{}, time.Now())

	_, err := svc.Submit(ctx, "user-1", leave.SubmitLeaveRequest{})

	assert.Error(t, err)
	assert.Equal(t, 0, requestRepo.createCalls)
}

func TestLeaveService_Submit_UnknownLeaveType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	requestRepo := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, &fakeAttendanceWriter{}, time.Now())

	_, err := svc.Submit(ctx, "user-1", leave.SubmitLeaveRequest{
		LeaveTypeID: "9f8e7d6c-5b4a-4f3e-8d2c-1b0a9f8e7d6c",
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-02",
	})

	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
	assert.Equal(t, 0, requestRepo.createCalls)
}

func TestLeaveService_Approve_ThreeDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)
	reviewedAt := time.Date(2025, 3, 28, 10, 0, 0, 0, time.UTC)

	requestRepo := &fakeLeaveRequestRepo{requests: map[string]leave.LeaveRequest{
		"req-1": pendingRequest(start, end),
	}}
	attWriter := &fakeAttendanceWriter{}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, attWriter, reviewedAt)

	result, err := svc.Approve(ctx, "req-1", "admin-1", leave.ReviewLeaveRequest{AdminComment: "enjoy"})

	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusApproved, result.Status)
	require.NotNil(t, result.ReviewedAt)
	assert.Equal(t, reviewedAt, *result.ReviewedAt)
	require.NotNil(t, result.ReviewedBy)
	assert.Equal(t, "admin-1", *result.ReviewedBy)

	// Exactly one leave row per day of the inclusive range
	require.Len(t, attWriter.leaveDays, 3)
	assert.Equal(t, start, attWriter.leaveDays[0])
	assert.Equal(t, start.AddDate(0, 0, 1), attWriter.leaveDays[1])
	assert.Equal(t, end, attWriter.leaveDays[2])

	stored := requestRepo.requests["req-1"]
	assert.Equal(t, leave.RequestStatusApproved, stored.Status)
}

func TestLeaveService_Approve_SingleDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	day := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

	requestRepo := &fakeLeaveRequestRepo{requests: map[string]leave.LeaveRequest{
		"req-1": pendingRequest(day, day),
	}}
	attWriter := &fakeAttendanceWriter{}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, attWriter, time.Now())

	_, err := svc.Approve(ctx, "req-1", "admin-1", leave.ReviewLeaveRequest{})

	require.NoError(t, err)
	assert.Len(t, attWriter.leaveDays, 1)
}

func TestLeaveService_Approve_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	approved := pendingRequest(start, start)
	approved.Status = leave.RequestStatusApproved
	requestRepo := &fakeLeaveRequestRepo{requests: map[string]leave.LeaveRequest{
		"req-1": approved,
	}}
	attWriter := &fakeAttendanceWriter{}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, attWriter, time.Now())

	_, err := svc.Approve(ctx, "req-1", "admin-1", leave.ReviewLeaveRequest{})

	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
	assert.Empty(t, attWriter.leaveDays)
}

func TestLeaveService_Approve_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	requestRepo := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, &fakeAttendanceWriter{}, time.Now())

	_, err := svc.Approve(ctx, "missing", "admin-1", leave.ReviewLeaveRequest{})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Approve_FailedDayFailsApproval(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)

	requestRepo := &fakeLeaveRequestRepo{requests: map[string]leave.LeaveRequest{
		"req-1": pendingRequest(start, end),
	}}
	attWriter := &fakeAttendanceWriter{failOn: 2}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, attWriter, time.Now())

	_, err := svc.Approve(ctx, "req-1", "admin-1", leave.ReviewLeaveRequest{})

	assert.Error(t, err)
}

func TestLeaveService_Reject_NoAttendanceWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)
	reviewedAt := time.Date(2025, 3, 28, 10, 0, 0, 0, time.UTC)

	requestRepo := &fakeLeaveRequestRepo{requests: map[string]leave.LeaveRequest{
		"req-1": pendingRequest(start, end),
	}}
	attWriter := &fakeAttendanceWriter{}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, attWriter, reviewedAt)

	result, err := svc.Reject(ctx, "req-1", "admin-1", leave.ReviewLeaveRequest{AdminComment: "short staffed"})

	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusRejected, result.Status)
	require.NotNil(t, result.AdminComment)
	assert.Equal(t, "short staffed", *result.AdminComment)
	assert.Empty(t, attWriter.leaveDays)
	assert.Zero(t, attWriter.calls)
}

func TestLeaveService_Reject_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	rejected := pendingRequest(day, day)
	rejected.Status = leave.RequestStatusRejected
	requestRepo := &fakeLeaveRequestRepo{requests: map[string]leave.LeaveRequest{
		"req-1": rejected,
	}}
	svc := newTestLeaveService(defaultTypeRepo(), requestRepo, &fakeAttendanceWriter{}, time.Now())

	_, err := svc.Reject(ctx, "req-1", "admin-1", leave.ReviewLeaveRequest{})

	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}
