package attendance

import (
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

// PeriodRequest is the query range for attendance history. Callers compute
// the daily/weekly/monthly window themselves, the service only filters.
type PeriodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) || !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) || !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdminPeriodRequest adds an optional per-employee filter for admin views.
type AdminPeriodRequest struct {
	PeriodRequest
	UserID string `json:"user_id,omitempty"`
}

func (r *AdminPeriodRequest) Validate() error {
	if err := r.PeriodRequest.Validate(); err != nil {
		return err
	}

	if r.UserID != "" && !validator.IsValidUUID(r.UserID) {
		return validator.ValidationErrors{{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		}}
	}

	return nil
}

type AttendanceResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     Status     `json:"status"`
	FirstName  *string    `json:"first_name,omitempty"`
	LastName   *string    `json:"last_name,omitempty"`
	EmployeeID *string    `json:"employee_id,omitempty"`
	Department *string    `json:"department,omitempty"`
}

// DailyStats summarizes one day for the admin attendance view.
// Absent = employees with no present/leave row that day.
type DailyStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
}

type AdminListResponse struct {
	Records []AttendanceResponse `json:"records"`
	Stats   DailyStats           `json:"stats"`
}

// ToResponse converts an entity to its API shape. Dates are rendered as
// YYYY-MM-DD because the column is a plain date.
func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     a.Status,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		EmployeeID: a.EmployeeID,
		Department: a.Department,
	}
}

func ToResponseList(list []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToResponse(a))
	}
	return out
}
