package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// retryDelay is the pause between connection attempts.
var retryDelay = 5 * time.Second

// withRetry runs attempt up to maxRetries times, sleeping retryDelay between
// failures. It gives up early when ctx is done.
func withRetry(ctx context.Context, name string, maxRetries int, logger *zap.Logger, attempt func(ctx context.Context) error) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for i := 1; i <= maxRetries; i++ {
		if err = attempt(ctx); err == nil {
			logger.Info("connected", zap.String("target", name))
			return nil
		}

		logger.Warn("connection attempt failed",
			zap.String("target", name),
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxRetries),
			zap.Error(err),
		)
		if i == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return fmt.Errorf("connect %s: %w", name, err)
}

func ConnectDBWithRetry(ctx context.Context, dsn string, maxRetries int, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	err = withRetry(ctx, "postgres", maxRetries, logger, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ConnectRedisWithRetry(ctx context.Context, addr string, dbIndex, maxRetries int, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIndex,
	})

	err := withRetry(ctx, "redis", maxRetries, logger, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// WaitForKafka dials the broker until it answers. kafka.Reader connects
// lazily, so without this a wrong address only shows up as fetch errors.
func WaitForKafka(ctx context.Context, broker string, maxRetries int, logger *zap.Logger) error {
	return withRetry(ctx, "kafka", maxRetries, logger, func(ctx context.Context) error {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			return err
		}
		return conn.Close()
	})
}
