// File: database/repository/kitchen/interface.go
package kitchenRepo

import (
	"context"
	"errors"

	"kitchenrent/database"
	"kitchenrent/models"
	"kitchenrent/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var ErrKitchenNotFound = errors.New("kitchen not found")

type KitchenRepository interface {
	GetByID(ctx context.Context, id string) (*models.Kitchen, error)
}

type mongoKitchenRepo struct {
	coll *mongo.Collection
}

// NewMongoKitchenRepo constructs a new MongoDB KitchenRepository.
func NewMongoKitchenRepo() KitchenRepository {
	repo := &mongoKitchenRepo{coll: database.Database().Collection("kitchens")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create kitchen indexes", zap.Error(err))
	}
	return repo
}
