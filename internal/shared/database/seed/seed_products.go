package seed

import (
	"context"
	"database/sql"
	"fmt"

	"go-sportstore/internal/product"
	"go-sportstore/internal/shared/database/helper"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const createProductsTable = `CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	category    TEXT NOT NULL,
	price       NUMERIC(12, 2) NOT NULL CHECK (price >= 0)
)`

const createCategoryIndex = `CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`

const insertProduct = `INSERT INTO products (id, name, description, category, price)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`

// Explicit ids bypass the sequence, so move it past them.
const syncProductSequence = `SELECT setval(pg_get_serial_sequence('products', 'id'), (SELECT COALESCE(MAX(id), 1) FROM products))`

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SampleProducts is the demo catalog.
func SampleProducts() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Kayak", Description: "A boat for one person", Category: "Watersports", Price: price("275.00")},
		{ID: 2, Name: "Lifejacket", Description: "Protective and fashionable", Category: "Watersports", Price: price("48.95")},
		{ID: 3, Name: "Soccer Ball", Description: "FIFA-approved size and weight", Category: "Soccer", Price: price("19.50")},
		{ID: 4, Name: "Corner Flags", Description: "Give your playing field a professional touch", Category: "Soccer", Price: price("34.95")},
		{ID: 5, Name: "Stadium", Description: "Flat-packed 35,000-seat stadium", Category: "Soccer", Price: price("79500.00")},
		{ID: 6, Name: "Thinking Cap", Description: "Improve your brain efficiency by 75%", Category: "Chess", Price: price("16.00")},
		{ID: 7, Name: "Unsteady Chair", Description: "Secretly give your opponent a disadvantage", Category: "Chess", Price: price("29.95")},
		{ID: 8, Name: "Human Chess Board", Description: "A fun game for the family", Category: "Chess", Price: price("75.00")},
		{ID: 9, Name: "Bling-Bling King", Description: "Gold-plated, diamond-studded King", Category: "Chess", Price: price("1200.00")},
	}
}

// SeedProducts creates the products table when missing and inserts items in
// one transaction. Rows whose id already exists are left untouched, so it is
// safe to run repeatedly.
func SeedProducts(ctx context.Context, db *sql.DB, items []product.Product, logger ...*zap.Logger) error {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{createProductsTable, createCategoryIndex} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	inserted := 0
	for _, p := range items {
		res, err := tx.ExecContext(ctx, insertProduct,
			p.ID,
			p.Name,
			helper.RawStringToNull(p.Description),
			p.Category,
			p.Price,
		)
		if err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if _, err := tx.ExecContext(ctx, syncProductSequence); err != nil {
		return fmt.Errorf("sync product sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	l.Info("products seeded",
		zap.Int("inserted", inserted),
		zap.Int("skipped", len(items)-inserted),
	)
	return nil
}
