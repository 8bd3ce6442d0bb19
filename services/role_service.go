package services

import (
	"context"
	"errors"
	"strings"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"go.uber.org/zap"
)

type RoleServiceError string

func (e RoleServiceError) Error() string { return string(e) }

const (
	ErrRoleNotFound       RoleServiceError = "role not found"
	ErrRoleNameRequired   RoleServiceError = "role name is required"
	ErrRoleProtected      RoleServiceError = "this role cannot be changed"
	ErrRoleCreationFailed RoleServiceError = "role could not be created"
	ErrRoleUpdateFailed   RoleServiceError = "role could not be updated"
	ErrRoleDeletionFailed RoleServiceError = "role could not be deleted"
)

// IRoleService manages the role catalogue and its display ordering.
type IRoleService interface {
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListAssignableRoles(ctx context.Context) ([]models.Role, error)
	GetRole(ctx context.Context, roleID uint) (*models.Role, error)
	CreateRole(ctx context.Context, name, description string) (*models.Role, error)
	UpdateRole(ctx context.Context, roleID uint, name, description string) error
	ReorderRole(ctx context.Context, roleID uint, orderID int) error
	DeleteRole(ctx context.Context, roleID uint) error
}

type RoleService struct {
	repo repositories.IRoleRepository
	uow  repositories.IUnitOfWork
}

func NewRoleService() IRoleService {
	return &RoleService{
		repo: repositories.NewRoleRepository(),
		uow:  repositories.NewUnitOfWork(),
	}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]models.Role, error) {
	return s.repo.ListAll(ctx)
}

func (s *RoleService) ListAssignableRoles(ctx context.Context) ([]models.Role, error) {
	return s.repo.ListAssignable(ctx)
}

func (s *RoleService) GetRole(ctx context.Context, roleID uint) (*models.Role, error) {
	role, err := s.repo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

// CreateRole appends the new role at the end of the display order.
func (s *RoleService) CreateRole(ctx context.Context, name, description string) (*models.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrRoleNameRequired
	}

	role := &models.Role{RoleName: name, RoleDescription: description}
	err := s.uow.InTx(ctx, func(r repositories.Repos) error {
		max, err := r.Roles.MaxOrderID(ctx)
		if err != nil {
			return err
		}
		role.RoleOrderID = max + 1
		return r.Roles.Create(ctx, role)
	})
	if err != nil {
		configslog.Log.Error("RoleService.CreateRole failed", zap.String("name", name), zap.Error(err))
		return nil, ErrRoleCreationFailed
	}
	return role, nil
}

func (s *RoleService) UpdateRole(ctx context.Context, roleID uint, name, description string) error {
	if roleID == models.RoleSuperAdmin {
		return ErrRoleProtected
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrRoleNameRequired
	}
	if err := s.repo.Update(ctx, roleID, name, description); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoleNotFound
		}
		configslog.Log.Error("RoleService.UpdateRole failed", zap.Uint("roleId", roleID), zap.Error(err))
		return ErrRoleUpdateFailed
	}
	return nil
}

// ReorderRole moves a role to a new display position. Every role between
// the old and new positions shifts by one in the same transaction, so the
// ordering stays a contiguous permutation.
func (s *RoleService) ReorderRole(ctx context.Context, roleID uint, orderID int) error {
	if orderID < 1 {
		return ErrRoleUpdateFailed
	}
	err := s.uow.InTx(ctx, func(r repositories.Repos) error {
		role, err := r.Roles.FindByID(ctx, roleID)
		if err != nil {
			return err
		}
		switch {
		case orderID == role.RoleOrderID:
			return nil
		case orderID > role.RoleOrderID:
			// Moving down: the roles it passes move up into the gap.
			if err := r.Roles.ShiftOrderRange(ctx, role.RoleOrderID+1, orderID, -1); err != nil {
				return err
			}
		default:
			// Moving up: the roles it passes move down to make room.
			if err := r.Roles.ShiftOrderRange(ctx, orderID, role.RoleOrderID-1, 1); err != nil {
				return err
			}
		}
		return r.Roles.UpdateOrder(ctx, roleID, orderID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoleNotFound
		}
		configslog.Log.Error("RoleService.ReorderRole failed", zap.Uint("roleId", roleID), zap.Error(err))
		return ErrRoleUpdateFailed
	}
	return nil
}

// DeleteRole removes a custom role and closes the gap it leaves in the
// display order, in one transaction.
func (s *RoleService) DeleteRole(ctx context.Context, roleID uint) error {
	if roleID >= models.RoleSuperAdmin && roleID <= models.RoleStaff {
		return ErrRoleProtected
	}
	err := s.uow.InTx(ctx, func(r repositories.Repos) error {
		role, err := r.Roles.FindByID(ctx, roleID)
		if err != nil {
			return err
		}
		if err := r.Roles.Delete(ctx, roleID); err != nil {
			return err
		}
		return r.Roles.ShiftOrdersFrom(ctx, role.RoleOrderID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoleNotFound
		}
		configslog.Log.Error("RoleService.DeleteRole failed", zap.Uint("roleId", roleID), zap.Error(err))
		return ErrRoleDeletionFailed
	}
	return nil
}

var _ IRoleService = (*RoleService)(nil)
