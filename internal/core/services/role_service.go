package services

import (
	"context"
	"fmt"

	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type RoleService struct {
	repo ports.RoleRepository
}

func NewRoleService(repo ports.RoleRepository) *RoleService {
	return &RoleService{
		repo: repo,
	}
}

// FindByName returns nil without error when the role does not exist.
func (s *RoleService) FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	role, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return role, nil
}
