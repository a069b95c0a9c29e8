package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
)

type RoleRepository interface {
	// FindByName returns nil without error when no such role exists.
	FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
	GrantToUser(ctx context.Context, userID uuid.UUID, roleID int64) error
}

type RoleService interface {
	FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
}
