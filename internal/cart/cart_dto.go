package cart

import (
	"go-sportstore/internal/product"

	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Qty       int    `json:"qty" validate:"omitempty,min=1"`
	ReturnURL string `json:"returnUrl" validate:"omitempty,max=2048"`
}

type CartLineResponse struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartIndexResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	ItemCount  int                `json:"itemCount"`
	TotalValue decimal.Decimal    `json:"totalValue"`
	ReturnURL  string             `json:"returnUrl"`
}

type CartSummaryResponse struct {
	ItemCount  int             `json:"itemCount"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

func toIndexResponse(c *Cart, returnURL string) CartIndexResponse {
	lines := c.Lines()
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineResponse{
			Product:  l.Product,
			Quantity: l.Quantity,
			Subtotal: l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}

	return CartIndexResponse{
		Lines:      out,
		ItemCount:  c.ItemCount(),
		TotalValue: c.ComputeTotalValue(),
		ReturnURL:  returnURL,
	}
}

func toSummaryResponse(c *Cart) CartSummaryResponse {
	return CartSummaryResponse{
		ItemCount:  c.ItemCount(),
		TotalValue: c.ComputeTotalValue(),
	}
}
