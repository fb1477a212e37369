package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/models"
)

const tagCacheKey = "catalog:tags"

// ErrCacheMiss is returned when the tag catalog is not cached.
var ErrCacheMiss = errors.New("tag catalog not found in cache")

// TagCacheRepository keeps a copy of the tag catalog in Redis.
type TagCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewTagCacheRepository creates a cache whose entries expire after expiration.
func NewTagCacheRepository(client *redis.Client, expiration time.Duration) *TagCacheRepository {
	return &TagCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached tags or ErrCacheMiss.
func (r *TagCacheRepository) Get(ctx context.Context) ([]models.Tag, error) {
	val, err := r.client.Get(ctx, tagCacheKey).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", tagCacheKey, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var tags []models.Tag
	if err := json.Unmarshal(val, &tags); err != nil {
		logger.Log.Infow("cache get", "key", tagCacheKey, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", tagCacheKey, "result", len(tags), "error", nil)
	return tags, nil
}

// Set stores tags with the configured expiration.
func (r *TagCacheRepository) Set(ctx context.Context, tags []models.Tag) error {
	val, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, tagCacheKey, val, r.exp).Err()
	logger.Log.Infow("cache set", "key", tagCacheKey, "result", len(tags), "error", err)

	return err
}
