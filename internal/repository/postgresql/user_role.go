package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
)

type userRoleRepository struct {
	db *database.DB
}

func NewUserRoleRepository(db *database.DB) user.UserRoleRepository {
	return &userRoleRepository{db: db}
}

// GetRoleByUserID implements user.UserRoleRepository.
func (r *userRoleRepository) GetRoleByUserID(ctx context.Context, userID string) (user.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT role FROM user_roles WHERE user_id = $1 LIMIT 1`

	var role user.Role
	if err := q.QueryRow(ctx, query, userID).Scan(&role); err != nil {
		if err == pgx.ErrNoRows {
			return "", user.ErrRoleNotFound
		}
		return "", fmt.Errorf("failed to get user role: %w", err)
	}

	return role, nil
}
