package product

import "github.com/shopspring/decimal"

// Product is a catalog entry. It is never mutated after it is loaded.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

func (p Product) CategoryName() string {
	return p.Category
}
