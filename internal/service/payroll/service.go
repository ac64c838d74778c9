package payroll

import (
	"context"
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/domain/payroll"
)

type payrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	now         func() time.Time
}

func NewPayrollService(payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &payrollServiceImpl{
		payrollRepo: payrollRepo,
		now:         time.Now,
	}
}

// GetMine implements payroll.PayrollService.
func (s *payrollServiceImpl) GetMine(ctx context.Context, userID string) (*payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		// No salary structure yet is a normal state, not an error
		return nil, nil
	}

	resp := payroll.ToResponse(*p)
	return &resp, nil
}

// List implements payroll.PayrollService.
func (s *payrollServiceImpl) List(ctx context.Context) ([]payroll.PayrollResponse, error) {
	list, err := s.payrollRepo.ListWithProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponseList(list), nil
}

// Update implements payroll.PayrollService.
func (s *payrollServiceImpl) Update(ctx context.Context, payrollID string, req payroll.UpdatePayrollRequest) (*payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	effective := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	p.BasicSalary = req.BasicSalary
	p.Allowances = req.Allowances
	p.Deductions = req.Deductions
	// Net salary is derived, never taken from the client
	p.NetSalary = p.Net()
	p.EffectiveDate = &effective

	if err := s.payrollRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	resp := payroll.ToResponse(p)
	return &resp, nil
}
