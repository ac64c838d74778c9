package attendance

import (
	"context"
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type attendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	profileRepo    profile.ProfileRepository
	now            func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	profileRepo profile.ProfileRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		profileRepo:    profileRepo,
		now:            time.Now,
	}
}

// today truncates the clock to the calendar date, matching the date column.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	now := s.now()

	att, err := s.attendanceRepo.UpsertCheckIn(ctx, userID, today(now), now)
	if err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(att)
	return &resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	now := s.now()
	date := today(now)

	// A check-out without a check-in must not invent a record
	affected, err := s.attendanceRepo.SetCheckOut(ctx, userID, date, now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, attendance.ErrNotCheckedIn
	}

	att, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, attendance.ErrAttendanceNotFound
	}

	resp := attendance.ToResponse(*att)
	return &resp, nil
}

// GetToday implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetToday(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today(s.now()))
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*att)
	return &resp, nil
}

// ListMine implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListMine(ctx context.Context, userID string, req attendance.PeriodRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.ParseDate(req.StartDate)
	end, _ := validator.ParseDate(req.EndDate)

	list, err := s.attendanceRepo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponseList(list), nil
}

// ListAll implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListAll(ctx context.Context, req attendance.AdminPeriodRequest) (*attendance.AdminListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.ParseDate(req.StartDate)
	end, _ := validator.ParseDate(req.EndDate)

	list, err := s.attendanceRepo.ListAllBetween(ctx, start, end, req.UserID)
	if err != nil {
		return nil, err
	}

	total, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	// Stats cover the range's start date. Absent counts employees with
	// neither a present nor a leave row that day.
	var stats attendance.DailyStats
	statDate := start.Format("2006-01-02")
	for _, att := range list {
		if att.Date.Format("2006-01-02") != statDate {
			continue
		}
		switch att.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLeave:
			stats.Leave++
		}
	}
	stats.Absent = int(total) - stats.Present - stats.Leave
	if stats.Absent < 0 {
		stats.Absent = 0
	}

	return &attendance.AdminListResponse{
		Records: attendance.ToResponseList(list),
		Stats:   stats,
	}, nil
}
