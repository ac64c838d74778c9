package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID implements profile.ProfileRepository.
func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, employee_id, first_name, last_name, email, phone, address,
		       department, position, hire_date, profile_picture, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p profile.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.EmployeeID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address,
		&p.Department, &p.Position, &p.HireDate, &p.ProfilePicture, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// List implements profile.ProfileRepository.
func (r *profileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.user_id, p.employee_id, p.first_name, p.last_name, p.email, p.phone, p.address,
		       p.department, p.position, p.hire_date, p.profile_picture, p.created_at, p.updated_at,
		       ur.role
		FROM profiles p
		LEFT JOIN user_roles ur ON ur.user_id = p.user_id
		ORDER BY p.first_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var list []profile.Profile
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.EmployeeID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address,
			&p.Department, &p.Position, &p.HireDate, &p.ProfilePicture, &p.CreatedAt, &p.UpdatedAt,
			&p.Role,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profile rows: %w", err)
	}

	return list, nil
}

// UpdateContact implements profile.ProfileRepository.
func (r *profileRepository) UpdateContact(ctx context.Context, userID string, phone, address string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET phone = $2, address = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	tag, err := q.Exec(ctx, query, userID, phone, address)
	if err != nil {
		return fmt.Errorf("failed to update profile contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}

// UpdateByAdmin implements profile.ProfileRepository.
func (r *profileRepository) UpdateByAdmin(ctx context.Context, profileID string, req profile.AdminUpdateProfileRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET department = $2, position = $3, phone = $4, address = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, profileID, req.Department, req.Position, req.Phone, req.Address)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}

// Count implements profile.ProfileRepository.
func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}
