package product

import (
	"context"
	"fmt"

	"go-sportstore/internal/category"
	"go-sportstore/internal/pkg/paging"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, req ListRequest) (ProductListResponse, error)
	GetByID(ctx context.Context, id int64) (Product, error)
}

type service struct {
	repo     Repository
	pageSize int
	logger   *zap.Logger
}

// NewService fails when pageSize is not positive, so a bad PAGE_SIZE stops
// the process at startup instead of on the first listing.
func NewService(repo Repository, pageSize int, logger ...*zap.Logger) (Service, error) {
	if err := paging.ValidateSize(pageSize); err != nil {
		return nil, err
	}

	l := zap.L().Named("product.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.service")
	}

	return &service{
		repo:     repo,
		pageSize: pageSize,
		logger:   l,
	}, nil
}

func (s *service) List(ctx context.Context, req ListRequest) (ProductListResponse, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return ProductListResponse{}, fmt.Errorf("list products: %w", err)
	}

	filtered := category.FilterByCategory(all, req.Category)

	items, info, err := paging.Paginate(filtered, req.Page, s.pageSize)
	if err != nil {
		return ProductListResponse{}, err
	}

	s.logger.Debug("products listed",
		zap.Int("page", info.CurrentPage),
		zap.Int("total_items", info.TotalItems),
		zap.Int("returned", len(items)),
	)

	return ProductListResponse{
		Products:        items,
		PagingInfo:      info,
		CurrentCategory: req.Category,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, ErrInvalidProductID
	}
	return s.repo.GetByID(ctx, id)
}
