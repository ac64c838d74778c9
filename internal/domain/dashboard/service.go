package dashboard

import "context"

// DashboardService aggregates landing page statistics.
type DashboardService interface {
	// GetAdminStats fetches the three admin counters concurrently. The
	// counters are independent queries, one failure fails the whole call.
	GetAdminStats(ctx context.Context) (*AdminStatsResponse, error)

	// GetEmployeeStats returns the caller's pending leave count and today's
	// attendance record
	GetEmployeeStats(ctx context.Context, userID string) (*EmployeeStatsResponse, error)
}
