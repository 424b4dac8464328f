package kitchenRepo

import (
	"context"
	"encoding/json"
	"time"

	"kitchenrent/models"
	"kitchenrent/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cachedKitchenRepo reads kitchen metadata through Redis. Cache failures fall
// back to the underlying repository.
type cachedKitchenRepo struct {
	next   KitchenRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedKitchenRepo wraps a repository with a Redis read-through cache.
func NewCachedKitchenRepo(next KitchenRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) KitchenRepository {
	return &cachedKitchenRepo{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *cachedKitchenRepo) GetByID(ctx context.Context, id string) (*models.Kitchen, error) {
	key := utils.KitchenCachePrefix + id

	raw, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var kitchen models.Kitchen
		if err := json.Unmarshal([]byte(raw), &kitchen); err == nil {
			return &kitchen, nil
		}
		r.logger.Warn("discarding undecodable kitchen cache entry", zap.String("kitchenID", id))
	} else if err != redis.Nil {
		r.logger.Warn("kitchen cache unavailable, falling back to database", zap.Error(err))
	}

	kitchen, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(kitchen); err == nil {
		if err := r.cache.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.logger.Warn("failed to cache kitchen", zap.String("kitchenID", id), zap.Error(err))
		}
	}
	return kitchen, nil
}
