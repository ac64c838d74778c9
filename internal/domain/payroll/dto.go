package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

// UpdatePayrollRequest carries the three editable amounts. Net salary and
// effective date are computed server-side, never accepted from the client.
type UpdatePayrollRequest struct {
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}
	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	EffectiveDate *string         `json:"effective_date"`
	UpdatedAt     time.Time       `json:"updated_at"`
	FirstName     *string         `json:"first_name,omitempty"`
	LastName      *string         `json:"last_name,omitempty"`
	EmployeeID    *string         `json:"employee_id,omitempty"`
	Department    *string         `json:"department,omitempty"`
}

func ToResponse(p Payroll) PayrollResponse {
	var effective *string
	if p.EffectiveDate != nil {
		s := p.EffectiveDate.Format("2006-01-02")
		effective = &s
	}
	return PayrollResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		BasicSalary:   p.BasicSalary,
		Allowances:    p.Allowances,
		Deductions:    p.Deductions,
		NetSalary:     p.NetSalary,
		EffectiveDate: effective,
		UpdatedAt:     p.UpdatedAt,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		EmployeeID:    p.EmployeeID,
		Department:    p.Department,
	}
}

func ToResponseList(list []Payroll) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToResponse(p))
	}
	return out
}
