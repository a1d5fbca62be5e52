package product_test

import (
	"context"
	"errors"
	"testing"
	"time"

	productMock "go-sportstore/internal/mock/product"
	"go-sportstore/internal/product"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type cacheDeps struct {
	mr    *miniredis.Miniredis
	next  *productMock.MockRepository
	cache product.Repository
}

func setupCacheTest(t *testing.T) *cacheDeps {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	next := productMock.NewMockRepository(gomock.NewController(t))

	return &cacheDeps{
		mr:    mr,
		next:  next,
		cache: product.NewCachedRepository(next, rdb, time.Minute, zap.NewNop()),
	}
}

func TestCachedRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("second read is served from redis", func(t *testing.T) {
		deps := setupCacheTest(t)
		deps.next.EXPECT().List(gomock.Any()).Return(fiveProducts(), nil).Times(1)

		first, err := deps.cache.List(ctx)
		require.NoError(t, err)
		second, err := deps.cache.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, productNames(first), productNames(second))
		assert.True(t, second[4].Price.Equal(first[4].Price))
		assert.True(t, deps.mr.Exists("catalog:products"))
	})

	t.Run("entry expires", func(t *testing.T) {
		deps := setupCacheTest(t)
		deps.next.EXPECT().List(gomock.Any()).Return(fiveProducts(), nil).Times(2)

		_, err := deps.cache.List(ctx)
		require.NoError(t, err)

		deps.mr.FastForward(2 * time.Minute)

		_, err = deps.cache.List(ctx)
		require.NoError(t, err)
	})

	t.Run("corrupt entry falls through", func(t *testing.T) {
		deps := setupCacheTest(t)
		require.NoError(t, deps.mr.Set("catalog:products", "{not json"))
		deps.next.EXPECT().List(gomock.Any()).Return(fiveProducts(), nil)

		items, err := deps.cache.List(ctx)

		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("redis down falls through", func(t *testing.T) {
		deps := setupCacheTest(t)
		deps.mr.Close()
		deps.next.EXPECT().List(gomock.Any()).Return(fiveProducts(), nil)

		items, err := deps.cache.List(ctx)

		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("source error is not cached", func(t *testing.T) {
		deps := setupCacheTest(t)
		deps.next.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.cache.List(ctx)

		assert.Error(t, err)
		assert.False(t, deps.mr.Exists("catalog:products"))
	})

	t.Run("cancelled caller does not cancel the fill", func(t *testing.T) {
		deps := setupCacheTest(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		deps.next.EXPECT().List(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]product.Product, error) {
				assert.NoError(t, ctx.Err())
				return fiveProducts(), nil
			})

		items, err := deps.cache.List(cancelled)

		require.NoError(t, err)
		assert.Len(t, items, 5)
		assert.True(t, deps.mr.Exists("catalog:products"))
	})
}

func TestCachedRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("caches hits", func(t *testing.T) {
		deps := setupCacheTest(t)
		want := newProduct(2, "P2", "Cat2", 20)
		deps.next.EXPECT().GetByID(gomock.Any(), int64(2)).Return(want, nil).Times(1)

		_, err := deps.cache.GetByID(ctx, 2)
		require.NoError(t, err)
		got, err := deps.cache.GetByID(ctx, 2)
		require.NoError(t, err)

		assert.Equal(t, want.Name, got.Name)
		assert.True(t, want.Price.Equal(got.Price))
	})

	t.Run("does not cache misses", func(t *testing.T) {
		deps := setupCacheTest(t)
		deps.next.EXPECT().GetByID(gomock.Any(), int64(9)).
			Return(product.Product{}, product.ErrProductNotFound).Times(2)

		_, err := deps.cache.GetByID(ctx, 9)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
		_, err = deps.cache.GetByID(ctx, 9)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("cancelled caller does not cancel the fill", func(t *testing.T) {
		deps := setupCacheTest(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		deps.next.EXPECT().GetByID(gomock.Any(), int64(3)).
			DoAndReturn(func(ctx context.Context, id int64) (product.Product, error) {
				assert.NoError(t, ctx.Err())
				return newProduct(id, "P3", "Cat1", 30), nil
			})

		got, err := deps.cache.GetByID(cancelled, 3)

		require.NoError(t, err)
		assert.Equal(t, "P3", got.Name)
		assert.True(t, deps.mr.Exists("catalog:product:3"))
	})
}
