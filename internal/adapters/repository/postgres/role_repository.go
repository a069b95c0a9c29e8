package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) ports.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	query := `SELECT id, name FROM roles WHERE name = $1`
	role := &domain.Role{}
	err := r.db.QueryRowContext(ctx, query, string(name)).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return role, nil
}

func (r *roleRepository) GrantToUser(ctx context.Context, userID uuid.UUID, roleID int64) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}
