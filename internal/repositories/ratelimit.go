package repositories

import (
	"context"
	"time"

	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "rate_limit:"

// RateLimitCacheRepository keeps fixed-window request counters in Redis.
type RateLimitCacheRepository struct {
	client *redis.Client
}

func NewRateLimitCacheRepository(client *redis.Client) *RateLimitCacheRepository {
	return &RateLimitCacheRepository{client: client}
}

// Hit increments the counter of key and returns the number of hits in the current window.
// The window starts with the first hit and the counter disappears when it ends.
func (r *RateLimitCacheRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := rateLimitKeyPrefix + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	_, err := pipe.Exec(ctx)

	logger.Log.Debugw("rate limit hit", "key", redisKey, "count", incr.Val(), "error", err)

	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
