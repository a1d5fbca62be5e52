package cart

import (
	"encoding/json"
	"math"
	"slices"

	"go-sportstore/internal/product"

	"github.com/shopspring/decimal"
)

// CartLine is one product in the cart and how many of it were added.
type CartLine struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds one line per product, in the order products were first added.
// It is not safe for concurrent use; the session store serializes writes.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make([]CartLine, 0)}
}

// AddItem merges quantity into the line for p, creating it at the end when
// absent. Invalid input leaves the cart unchanged.
func (c *Cart) AddItem(p product.Product, quantity int) error {
	if p.ID <= 0 {
		return ErrInvalidProduct
	}
	if quantity <= 0 {
		return ErrInvalidQty
	}

	if i := c.indexOf(p.ID); i >= 0 {
		if c.lines[i].Quantity > math.MaxInt-quantity {
			return ErrInvalidQty
		}
		c.lines[i].Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, CartLine{Product: p, Quantity: quantity})
	return nil
}

// RemoveLine drops the line for p. Removing an absent product is a no-op.
func (c *Cart) RemoveLine(p product.Product) {
	c.removeByID(p.ID)
}

func (c *Cart) removeByID(productID int64) {
	c.lines = slices.DeleteFunc(c.lines, func(l CartLine) bool {
		return l.Product.ID == productID
	})
}

// ComputeTotalValue is the sum of price times quantity over all lines.
func (c *Cart) ComputeTotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = make([]CartLine, 0)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity reports how many of productID are in the cart, 0 when absent.
func (c *Cart) Quantity(productID int64) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) indexOf(productID int64) int {
	return slices.IndexFunc(c.lines, func(l CartLine) bool {
		return l.Product.ID == productID
	})
}

type cartSnapshot struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []CartLine{}
	}
	return json.Marshal(cartSnapshot{Lines: lines})
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var snap cartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.Lines == nil {
		snap.Lines = make([]CartLine, 0)
	}
	c.lines = snap.Lines
	return nil
}
