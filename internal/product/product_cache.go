package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyAll    = "catalog:products"
	cacheKeyPrefix = "catalog:product:"
)

type cachedRepository struct {
	next   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

// NewCachedRepository puts a Redis read-through cache in front of next.
// Redis failures never fail a read: the breaker opens after repeated
// errors and reads go straight to next until it half-opens again.
func NewCachedRepository(next Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Repository {
	l := zap.L().Named("product.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.cache")
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "product-cache",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &cachedRepository{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		cb:     cb,
		logger: l,
	}
}

func (r *cachedRepository) List(ctx context.Context) ([]Product, error) {
	var cached []Product
	if r.lookup(ctx, cacheKeyAll, &cached) {
		return cached, nil
	}

	// the fill is shared by every waiter, so one caller going away must not
	// fail it for the rest
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := r.sf.Do(cacheKeyAll, func() (any, error) {
		items, err := r.next.List(fillCtx)
		if err != nil {
			return nil, err
		}
		r.store(fillCtx, cacheKeyAll, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	key := fmt.Sprintf("%s%d", cacheKeyPrefix, id)

	var cached Product
	if r.lookup(ctx, key, &cached) {
		return cached, nil
	}

	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := r.sf.Do(key, func() (any, error) {
		p, err := r.next.GetByID(fillCtx, id)
		if err != nil {
			return nil, err
		}
		r.store(fillCtx, key, p)
		return p, nil
	})
	if err != nil {
		return Product{}, err
	}
	return v.(Product), nil
}

// lookup reports whether key was found and decoded into dst.
func (r *cachedRepository) lookup(ctx context.Context, key string, dst any) bool {
	v, err := r.cb.Execute(func() (any, error) {
		raw, err := r.rdb.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return raw, err
	})
	if err != nil {
		r.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	raw, _ := v.([]byte)
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *cachedRepository) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	// jitter spreads out expiry of entries written together
	ttl := r.ttl + time.Duration(rand.IntN(60))*time.Second
	if _, err := r.cb.Execute(func() (any, error) {
		return nil, r.rdb.Set(ctx, key, data, ttl).Err()
	}); err != nil {
		r.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
