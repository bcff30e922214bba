package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"ofertas-api/internal/offer"
)

const keyPrefix = "search:"

// redisClient is the slice of the go-redis API the store uses, so tests can
// substitute a fake. *redis.Client satisfies it.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Redis is a Store backed by a shared Redis instance, for deployments that
// run more than one process behind a balancer. The server-side expiry is only
// garbage collection: freshness is still decided by the caller from the entry
// timestamp, same as the in-memory store.
type Redis struct {
	client redisClient
	expiry time.Duration
	logger zerolog.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Redis {
	return &Redis{
		client: client,
		expiry: 2 * ttl,
		logger: logger,
	}
}

func (r *Redis) Get(key string) (Entry, bool) {
	raw, err := r.client.Get(context.Background(), keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn().Err(err).Str("key", key).Msg("redis get failed")
		}
		return Entry{}, false
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return Entry{}, false
	}
	return e, true
}

func (r *Redis) Set(key string, data []offer.Offer) {
	raw, err := json.Marshal(Entry{Timestamp: time.Now(), Data: data})
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache entry not serializable")
		return
	}
	if err := r.client.Set(context.Background(), keyPrefix+key, raw, r.expiry).Err(); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}
