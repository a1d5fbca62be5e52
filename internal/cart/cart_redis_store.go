package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cartKeyPrefix = "cart:"
	maxTxRetries  = 3
)

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore keeps each cart as a JSON value under cart:<session id>,
// expiring ttl after the last write.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *RedisStore {
	l := zap.L().Named("cart.redis_store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.redis_store")
	}
	return &RedisStore{rdb: rdb, ttl: ttl, logger: l}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return loadCart(ctx, s.rdb, cartKey(sessionID))
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c *Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, cartKey(sessionID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Update runs fn inside WATCH/MULTI. A concurrent write to the same session
// aborts the transaction and it is retried; after maxTxRetries conflicts
// ErrCartBusy is returned.
func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(*Cart) error) error {
	key := cartKey(sessionID)

	txf := func(tx *redis.Tx) error {
		c, err := loadCart(ctx, tx, key)
		if errors.Is(err, ErrCartNotFound) {
			c = NewCart()
		} else if err != nil {
			return err
		}

		if err := fn(c); err != nil {
			return err
		}

		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode cart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxTxRetries; attempt++ {
		err := s.rdb.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		s.logger.Debug("cart update conflict",
			zap.String("session_id", sessionID),
			zap.Int("attempt", attempt),
		)
	}

	s.logger.Warn("cart update gave up after conflicts", zap.String("session_id", sessionID))
	return ErrCartBusy
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func loadCart(ctx context.Context, g getter, key string) (*Cart, error) {
	b, err := g.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	c := NewCart()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return c, nil
}
