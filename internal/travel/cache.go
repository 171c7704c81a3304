package travel

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type estimator interface {
	Estimate(ctx context.Context, origin, dest domain.Coordinates) (float64, bool)
}

// CachedEstimator memoizes travel estimates per coordinate pair in redis.
// Traffic-aware estimates go stale, so entries expire after the configured
// TTL. Redis failures degrade to direct estimator calls.
type CachedEstimator struct {
	next   estimator
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedEstimator(next estimator, client *redis.Client, ttl time.Duration, log logger.Logger) *CachedEstimator {
	return &CachedEstimator{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedEstimator) Estimate(ctx context.Context, origin, dest domain.Coordinates) (float64, bool) {
	key := cacheKey(origin, dest)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		minutes, parseErr := strconv.ParseFloat(val, 64)
		if parseErr == nil {
			return minutes, true
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("travel cache read failed",
			logger.String("error", err.Error()),
		)
	}

	minutes, ok := c.next.Estimate(ctx, origin, dest)
	if !ok {
		return 0, false
	}

	if err = c.client.Set(ctx, key, strconv.FormatFloat(minutes, 'f', -1, 64), c.ttl).Err(); err != nil {
		c.logger.Warn("travel cache write failed",
			logger.String("error", err.Error()),
		)
	}

	return minutes, true
}

func cacheKey(origin, dest domain.Coordinates) string {
	return fmt.Sprintf("travel:%.5f,%.5f:%.5f,%.5f", origin.Lat, origin.Lon, dest.Lat, dest.Lon)
}
