package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	attendanceDomain "github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
)

type dashboardServiceImpl struct {
	profileRepo      profile.ProfileRepository
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendanceDomain.AttendanceRepository
	now              func() time.Time
}

func NewDashboardService(
	profileRepo profile.ProfileRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendanceDomain.AttendanceRepository,
) dashboard.DashboardService {
	return &dashboardServiceImpl{
		profileRepo:      profileRepo,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		now:              time.Now,
	}
}

func (s *dashboardServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetAdminStats implements dashboard.DashboardService.
func (s *dashboardServiceImpl) GetAdminStats(ctx context.Context) (*dashboard.AdminStatsResponse, error) {
	stats := &dashboard.AdminStatsResponse{}
	date := s.today()

	// The three counters hit different tables, fetch them concurrently
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.profileRepo.Count(gctx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		pending, err := s.leaveRequestRepo.CountPending(gctx)
		if err != nil {
			return err
		}
		stats.PendingLeaves = pending
		return nil
	})

	g.Go(func() error {
		present, err := s.attendanceRepo.CountByStatusOn(gctx, date, attendanceDomain.StatusPresent)
		if err != nil {
			return err
		}
		stats.PresentToday = present
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetEmployeeStats implements dashboard.DashboardService.
func (s *dashboardServiceImpl) GetEmployeeStats(ctx context.Context, userID string) (*dashboard.EmployeeStatsResponse, error) {
	stats := &dashboard.EmployeeStatsResponse{}
	date := s.today()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pending, err := s.leaveRequestRepo.CountPendingByUser(gctx, userID)
		if err != nil {
			return err
		}
		stats.PendingLeaves = pending
		return nil
	})

	g.Go(func() error {
		att, err := s.attendanceRepo.GetByUserAndDate(gctx, userID, date)
		if err != nil {
			return err
		}
		if att != nil {
			resp := attendanceDomain.ToResponse(*att)
			stats.TodayAttendance = &resp
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}
