package kitchenRepo

import (
	"context"
	"fmt"
	"time"

	"kitchenrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoKitchenRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hostId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a kitchen by its unique ID.
func (r *mongoKitchenRepo) GetByID(ctx context.Context, id string) (*models.Kitchen, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var kitchen models.Kitchen
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&kitchen); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrKitchenNotFound
		}
		return nil, fmt.Errorf("failed to fetch kitchen with id %s: %w", id, err)
	}
	return &kitchen, nil
}
