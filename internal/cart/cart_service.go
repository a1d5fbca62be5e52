package cart

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go-sportstore/internal/pkg/apperror"
	"go-sportstore/internal/product"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultReturnURL = "/"

// ProductFinder resolves the product being added to a cart.
//
//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type ProductFinder interface {
	GetByID(ctx context.Context, id int64) (product.Product, error)
}

type Service interface {
	Index(ctx context.Context, sessionID, returnURL string) (CartIndexResponse, error)
	Summary(ctx context.Context, sessionID string) (CartSummaryResponse, error)
	AddToCart(ctx context.Context, sessionID string, req AddToCartRequest) (CartIndexResponse, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int64, returnURL string) (CartIndexResponse, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store    SessionStore
	products ProductFinder
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(store SessionStore, products ProductFinder, logger ...*zap.Logger) Service {
	l := zap.L().Named("cart.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.service")
	}

	v := validator.New()
	apperror.RegisterJSONTagNames(v)

	return &service{
		store:    store,
		products: products,
		validate: v,
		logger:   l,
	}
}

// ========================
// helpers
// ========================

func (s *service) load(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	c, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		return NewCart(), nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// safeReturnURL only lets through same-site paths; anything else falls back
// to the catalog root.
func safeReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return defaultReturnURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return defaultReturnURL
	}
	return raw
}

func (s *service) Index(ctx context.Context, sessionID, returnURL string) (CartIndexResponse, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return CartIndexResponse{}, err
	}
	return toIndexResponse(c, safeReturnURL(returnURL)), nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (CartSummaryResponse, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return CartSummaryResponse{}, err
	}
	return toSummaryResponse(c), nil
}

func (s *service) AddToCart(ctx context.Context, sessionID string, req AddToCartRequest) (CartIndexResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartIndexResponse{}, MapValidationError(err)
	}
	if sessionID == "" {
		return CartIndexResponse{}, ErrSessionRequired
	}

	qty := req.Qty
	if qty == 0 {
		qty = 1
	}

	p, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return CartIndexResponse{}, err
	}

	var updated *Cart
	err = s.store.Update(ctx, sessionID, func(c *Cart) error {
		if err := c.AddItem(p, qty); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return CartIndexResponse{}, err
	}

	s.logger.Debug("item added to cart",
		zap.String("session_id", sessionID),
		zap.Int64("product_id", p.ID),
		zap.Int("qty", qty),
	)

	return toIndexResponse(updated, safeReturnURL(req.ReturnURL)), nil
}

// RemoveFromCart matches on product id only, so a line whose product has
// since left the catalog can still be removed.
func (s *service) RemoveFromCart(ctx context.Context, sessionID string, productID int64, returnURL string) (CartIndexResponse, error) {
	if productID <= 0 {
		return CartIndexResponse{}, ErrInvalidProduct
	}
	if sessionID == "" {
		return CartIndexResponse{}, ErrSessionRequired
	}

	var updated *Cart
	err := s.store.Update(ctx, sessionID, func(c *Cart) error {
		c.RemoveLine(product.Product{ID: productID})
		updated = c
		return nil
	})
	if err != nil {
		return CartIndexResponse{}, err
	}

	return toIndexResponse(updated, safeReturnURL(returnURL)), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info("cart cleared", zap.String("session_id", sessionID))
	return nil
}
