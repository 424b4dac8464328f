package user

import (
	"context"

	userRepo "kitchenrent/database/repository/user"
	"kitchenrent/models"
)

type UserService interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetDisplayName(ctx context.Context, userID string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
