// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"kitchenrent/database"
	"kitchenrent/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	GetByKitchenAndDate(ctx context.Context, kitchenID, date string) ([]models.Availability, error)
	CreateMany(ctx context.Context, slots []models.Availability) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.Database().Collection("availabilities"),
	}
}
