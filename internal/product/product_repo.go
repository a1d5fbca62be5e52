package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-sportstore/internal/shared/database/helper"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
}

const listProducts = `SELECT id, name, description, category, price
FROM products
ORDER BY id`

const getProductByID = `SELECT id, name, description, category, price
FROM products
WHERE id = $1`

type repository struct {
	db DBTX
}

func NewRepository(db DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listProducts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, getProductByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanProduct tolerates NULL description and price columns.
func scanProduct(row scanner) (Product, error) {
	var (
		p           Product
		description sql.NullString
		price       decimal.NullDecimal
	)
	if err := row.Scan(&p.ID, &p.Name, &description, &p.Category, &price); err != nil {
		return Product{}, err
	}
	p.Description = helper.NullStringValue(description)
	p.Price = helper.NullDecimalValue(price)
	return p, nil
}
