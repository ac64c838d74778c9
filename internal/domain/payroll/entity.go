package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one row of the payroll table, one salary structure per user.
type Payroll struct {
	ID            string
	UserID        string
	BasicSalary   decimal.Decimal
	Allowances    decimal.Decimal
	Deductions    decimal.Decimal
	NetSalary     decimal.Decimal
	EffectiveDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined profile fields on admin listings
	FirstName  *string
	LastName   *string
	EmployeeID *string
	Department *string
}

// Net computes basic + allowances - deductions.
func (p Payroll) Net() decimal.Decimal {
	return p.BasicSalary.Add(p.Allowances).Sub(p.Deductions)
}
