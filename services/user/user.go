package user

import (
	"context"
	"fmt"
	"strings"

	"kitchenrent/models"
	"kitchenrent/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var displayNameProjection = bson.M{"id": 1, "displayName": 1, "email": 1}

// GetUserByID returns the full account, including contact channels.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// GetDisplayName returns the name shown to hosts. Accounts without a display
// name fall back to the local part of their email address.
func (s *DefaultUserService) GetDisplayName(ctx context.Context, userID string) (string, error) {
	u, err := s.Repo.GetByIDWithProjection(ctx, userID, displayNameProjection)
	if err != nil {
		return "", fmt.Errorf("failed to resolve display name for %s: %w", userID, err)
	}

	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name, nil
	}
	if local, _, ok := strings.Cut(u.Email, "@"); ok && local != "" {
		return local, nil
	}
	return "", fmt.Errorf("user %s has no display name", userID)
}
