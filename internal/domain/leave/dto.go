package leave

import (
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Remarks     string `json:"remarks,omitempty"`
}

// Validate runs before any store write. An end date before the start date
// never reaches the database.
func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	} else if !validator.IsValidUUID(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id must be a valid UUID",
		})
	}

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

type ReviewLeaveRequest struct {
	AdminComment string `json:"admin_comment,omitempty"`
}

type ListRequestsFilter struct {
	Status string `json:"status,omitempty"`
}

func (f *ListRequestsFilter) Validate() error {
	if f.Status != "" && !RequestStatus(f.Status).IsValid() {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		}}
	}
	return nil
}

type LeaveTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DaysPerYear int     `json:"days_per_year"`
}

type LeaveRequestResponse struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	LeaveTypeID   string        `json:"leave_type_id"`
	LeaveTypeName *string       `json:"leave_type_name,omitempty"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	Days          int           `json:"days"`
	Status        RequestStatus `json:"status"`
	AdminComment  *string       `json:"admin_comment"`
	ReviewedBy    *string       `json:"reviewed_by"`
	ReviewedAt    *time.Time    `json:"reviewed_at"`
	Remarks       *string       `json:"remarks"`
	CreatedAt     time.Time     `json:"created_at"`
	FirstName     *string       `json:"first_name,omitempty"`
	LastName      *string       `json:"last_name,omitempty"`
	EmployeeID    *string       `json:"employee_id,omitempty"`
}

func ToTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		DaysPerYear: t.DaysPerYear,
	}
}

func ToRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		LeaveTypeID:   r.LeaveTypeID,
		LeaveTypeName: r.LeaveTypeName,
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		Days:          r.Days(),
		Status:        r.Status,
		AdminComment:  r.AdminComment,
		ReviewedBy:    r.ReviewedBy,
		ReviewedAt:    r.ReviewedAt,
		Remarks:       r.Remarks,
		CreatedAt:     r.CreatedAt,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		EmployeeID:    r.EmployeeID,
	}
}

func ToRequestResponseList(list []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ToRequestResponse(r))
	}
	return out
}
