package app

import (
	"context"
	"net/http"
	"time"

	"go-sportstore/internal/cart"
	"go-sportstore/internal/category"
	"go-sportstore/internal/config"
	"go-sportstore/internal/middleware"
	"go-sportstore/internal/pkg/response"
	"go-sportstore/internal/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type moduleDeps struct {
	cfg      config.Config
	logger   *zap.Logger
	products product.Repository
	carts    cart.SessionStore
	checks   map[string]func(context.Context) error
}

func registerModules(router *gin.Engine, d moduleDeps) error {
	// --- Services ---
	productService, err := product.NewService(d.products, d.cfg.PageSize, d.logger)
	if err != nil {
		return err
	}
	categoryService := category.NewService[product.Product](d.products, d.logger)
	cartService := cart.NewService(d.carts, d.products, d.logger)

	// --- Handlers ---
	productHandler := product.NewHandler(productService, d.logger)
	categoryHandler := category.NewHandler(categoryService, d.logger)
	cartHandler := cart.NewHandler(cartService, d.logger)

	// --- Routes Registration ---
	router.GET("/healthz", healthHandler(d.checks))

	api := router.Group("/api/v1")
	{
		product.RegisterRoutes(api, productHandler)
		category.RegisterRoutes(api, categoryHandler)
		cart.RegisterRoutes(api, cartHandler, middleware.SessionConfig{
			TTL:    d.cfg.SessionTTL,
			Secure: d.cfg.SessionSecure,
		})
	}
	return nil
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// healthHandler reports 503 when any dependency check fails.
func healthHandler(checks map[string]func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		res := healthResponse{Status: "ok"}
		if len(checks) > 0 {
			res.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				res.Status = "degraded"
				res.Checks[name] = err.Error()
				continue
			}
			res.Checks[name] = "ok"
		}

		if res.Status != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Dependency check failed", res.Checks)
			return
		}
		response.Success(c, http.StatusOK, res, nil)
	}
}
