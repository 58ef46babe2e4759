package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type UserServiceInterface interface {
	List(ctx context.Context, actor authz.Actor, role string) ([]entities.User, error)
	Technicians(ctx context.Context, actor authz.Actor) ([]entities.User, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor authz.Actor, role string) ([]entities.User, error) {
	if !authz.Can(actor, authz.UsersList) {
		return nil, apperrors.NewAuthorizationError("not allowed to list users")
	}
	if role != "" {
		if _, err := entities.ParseRole(role); err != nil {
			return nil, err
		}
	}

	users, err := s.userRepo.List(ctx, role)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Technicians backs the assignment picker on the request form.
func (s *UserService) Technicians(ctx context.Context, actor authz.Actor) ([]entities.User, error) {
	return s.List(ctx, actor, string(entities.RoleTechnician))
}
