package app

import (
	"context"
	"database/sql"
	"errors"

	"go-sportstore/internal/cart"
	"go-sportstore/internal/config"
	"go-sportstore/internal/middleware"
	"go-sportstore/internal/product"
	"go-sportstore/internal/shared/database/seed"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// infra holds the long-lived connections behind the modules. Both are nil
// for the memory backend.
type infra struct {
	db    *sql.DB
	redis *redis.Client
}

func (i *infra) Close() error {
	var errs []error
	if i.redis != nil {
		errs = append(errs, i.redis.Close())
	}
	if i.db != nil {
		errs = append(errs, i.db.Close())
	}
	return errors.Join(errs...)
}

// NewRouter returns a gin engine with the middleware every route shares.
func NewRouter(cfg config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)
	return r
}

// BuildApp connects the configured backend and registers every module on
// router. The returned close func releases the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config, logger *zap.Logger) (func() error, error) {
	// 1. Setup Infrastructure
	in := &infra{}
	deps := moduleDeps{cfg: cfg, logger: logger}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		logger.Warn("using in-memory backend, carts are lost on restart")
		deps.products = product.NewMemoryRepository(seed.SampleProducts()...)
		deps.carts = cart.NewMemoryStore(cfg.SessionTTL)

	default:
		db, err := ConnectDBWithRetry(ctx, cfg.DBURL, cfg.ConnectRetries, logger)
		if err != nil {
			return nil, err
		}
		in.db = db

		rdb, err := ConnectRedisWithRetry(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.ConnectRetries, logger)
		if err != nil {
			_ = in.Close()
			return nil, err
		}
		in.redis = rdb

		deps.products = product.NewCachedRepository(
			product.NewRepository(db),
			rdb,
			cfg.ProductCacheTTL,
			logger,
		)
		deps.carts = cart.NewRedisStore(rdb, cfg.SessionTTL, logger)
		deps.checks = map[string]func(context.Context) error{
			"postgres": db.PingContext,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}
	}

	// 2. Register Modules & Routes
	if err := registerModules(router, deps); err != nil {
		_ = in.Close()
		return nil, err
	}

	return in.Close, nil
}
