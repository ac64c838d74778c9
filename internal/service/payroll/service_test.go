package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrm-backend-go/internal/domain/payroll"
)

type fakePayrollRepo struct {
	rows        map[string]payroll.Payroll
	updateCalls int
}

func (f *fakePayrollRepo) GetByUserID(ctx context.Context, userID string) (*payroll.Payroll, error) {
	for _, p := range f.rows {
		if p.UserID == userID {
			snapshot := p
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	if p, ok := f.rows[id]; ok {
		return p, nil
	}
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) ListWithProfiles(ctx context.Context) ([]payroll.Payroll, error) {
	var out []payroll.Payroll
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, p payroll.Payroll) error {
	if _, ok := f.rows[p.ID]; !ok {
		return payroll.ErrPayrollNotFound
	}
	f.updateCalls++
	f.rows[p.ID] = p
	return nil
}

func newTestPayrollService(repo *fakePayrollRepo, now time.Time) *payrollServiceImpl {
	return &payrollServiceImpl{
		payrollRepo: repo,
		now:         func() time.Time { return now },
	}
}

func seedPayroll() *fakePayrollRepo {
	return &fakePayrollRepo{rows: map[string]payroll.Payroll{
		"pay-1": {
			ID:          "pay-1",
			UserID:      "user-1",
			BasicSalary: decimal.NewFromInt(5000),
			Allowances:  decimal.NewFromInt(500),
			Deductions:  decimal.NewFromInt(200),
			NetSalary:   decimal.NewFromInt(5300),
		},
	}}
}

func TestPayrollService_GetMine_NoRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestPayrollService(&fakePayrollRepo{rows: map[string]payroll.Payroll{}}, time.Now())

	result, err := svc.GetMine(ctx, "user-9")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPayrollService_Update_RecomputesNet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seedPayroll()
	now := time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)
	svc := newTestPayrollService(repo, now)

	result, err := svc.Update(ctx, "pay-1", payroll.UpdatePayrollRequest{
		BasicSalary: decimal.NewFromInt(6000),
		Allowances:  decimal.NewFromInt(800),
		Deductions:  decimal.NewFromInt(350),
	})

	require.NoError(t, err)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(6450)),
		"net salary should be 6450, got %s", result.NetSalary)
	require.NotNil(t, result.EffectiveDate)
	assert.Equal(t, "2025-05-20", *result.EffectiveDate)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestPayrollService_Update_NegativeAmount_NoWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seedPayroll()
	svc := newTestPayrollService(repo, time.Now())

	_, err := svc.Update(ctx, "pay-1", payroll.UpdatePayrollRequest{
		BasicSalary: decimal.NewFromInt(-1),
		Allowances:  decimal.Zero,
		Deductions:  decimal.Zero,
	})

	assert.Error(t, err)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestPayrollService_Update_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestPayrollService(seedPayroll(), time.Now())

	_, err := svc.Update(ctx, "missing", payroll.UpdatePayrollRequest{
		BasicSalary: decimal.NewFromInt(1000),
		Allowances:  decimal.Zero,
		Deductions:  decimal.Zero,
	})

	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}
