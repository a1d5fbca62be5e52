package seed_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go-sportstore/internal/category"
	"go-sportstore/internal/shared/database/seed"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSampleProducts(t *testing.T) {
	items := seed.SampleProducts()

	seen := make(map[int64]bool, len(items))
	for _, p := range items {
		assert.Positive(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		assert.True(t, p.Price.IsPositive(), p.Name)
		seen[p.ID] = true
	}
	assert.Equal(t, []string{"Chess", "Soccer", "Watersports"}, category.DistinctCategories(items))
}

func TestSeedProducts(t *testing.T) {
	ctx := context.Background()
	items := seed.SampleProducts()[:2]

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS products")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS idx_products_category")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs(int64(1), "Kayak", sqlmock.AnyArg(), "Watersports", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs(int64(2), "Lifejacket", sqlmock.AnyArg(), "Watersports", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("SELECT setval")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err = seed.SeedProducts(ctx, db, items, zap.NewNop())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
			WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err = seed.SeedProducts(ctx, db, items, zap.NewNop())

		assert.ErrorContains(t, err, "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
