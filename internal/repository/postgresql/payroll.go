package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetByUserID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByUserID(ctx context.Context, userID string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, basic_salary, allowances, deductions, net_salary,
		       effective_date, created_at, updated_at
		FROM payroll
		WHERE user_id = $1
		LIMIT 1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.BasicSalary, &p.Allowances, &p.Deductions, &p.NetSalary,
		&p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll: %w", err)
	}

	return &p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, basic_salary, allowances, deductions, net_salary,
		       effective_date, created_at, updated_at
		FROM payroll
		WHERE id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.BasicSalary, &p.Allowances, &p.Deductions, &p.NetSalary,
		&p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

// ListWithProfiles implements payroll.PayrollRepository.
func (r *payrollRepository) ListWithProfiles(ctx context.Context) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT py.id, py.user_id, py.basic_salary, py.allowances, py.deductions, py.net_salary,
		       py.effective_date, py.created_at, py.updated_at,
		       p.first_name, p.last_name, p.employee_id, p.department
		FROM payroll py
		JOIN profiles p ON p.user_id = py.user_id
		ORDER BY py.updated_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	defer rows.Close()

	var list []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.BasicSalary, &p.Allowances, &p.Deductions, &p.NetSalary,
			&p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt,
			&p.FirstName, &p.LastName, &p.EmployeeID, &p.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll rows: %w", err)
	}

	return list, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET basic_salary = $2, allowances = $3, deductions = $4, net_salary = $5,
		    effective_date = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.BasicSalary, p.Allowances, p.Deductions, p.NetSalary, p.EffectiveDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
