package dashboard

import "github.com/peoplehub/hrm-backend-go/internal/domain/attendance"

// AdminStatsResponse is the admin landing page summary.
type AdminStatsResponse struct {
	TotalEmployees int64 `json:"total_employees"`
	PendingLeaves  int64 `json:"pending_leaves"`
	PresentToday   int64 `json:"present_today"`
}

// EmployeeStatsResponse is the employee landing page summary.
type EmployeeStatsResponse struct {
	PendingLeaves   int64                          `json:"pending_leaves"`
	TodayAttendance *attendance.AttendanceResponse `json:"today_attendance"`
}
