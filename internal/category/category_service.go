package category

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Source lists every item of the catalog.
type Source[T Categorized] interface {
	List(ctx context.Context) ([]T, error)
}

type Service interface {
	Menu(ctx context.Context, selected *string) (NavMenu, error)
}

type service struct {
	categories func(ctx context.Context) ([]string, error)
	logger     *zap.Logger
}

func NewService[T Categorized](src Source[T], logger ...*zap.Logger) Service {
	l := zap.L().Named("category.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("category.service")
	}

	return &service{
		categories: func(ctx context.Context) ([]string, error) {
			items, err := src.List(ctx)
			if err != nil {
				return nil, err
			}
			return DistinctCategories(items), nil
		},
		logger: l,
	}
}

func (s *service) Menu(ctx context.Context, selected *string) (NavMenu, error) {
	cats, err := s.categories(ctx)
	if err != nil {
		return NavMenu{}, fmt.Errorf("load categories: %w", err)
	}

	return NavMenu{
		Categories:       cats,
		SelectedCategory: selected,
	}, nil
}
