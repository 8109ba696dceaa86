package domain

import "github.com/shopspring/decimal"

// ShoppingCartItem is one line of a cart: a product snapshot plus the
// quantity the user holds. Quantity is >= 1 while the line exists; quantity
// zero is represented by the line's absence.
type ShoppingCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is price * quantity.
func (i ShoppingCartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShoppingCart is the per-user aggregate, keyed by product id so a product
// appears at most once.
type ShoppingCart struct {
	Items map[int]ShoppingCartItem `json:"items"`
	Total decimal.Decimal          `json:"total"`
}

// NewShoppingCart returns an empty cart with a zero total.
func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{
		Items: make(map[int]ShoppingCartItem),
		Total: decimal.Zero,
	}
}

// Add puts an item into the cart, replacing any line for the same product,
// and recomputes the total.
func (c *ShoppingCart) Add(item ShoppingCartItem) {
	c.Items[item.Product.ProductID] = item
	c.recalc()
}

func (c *ShoppingCart) recalc() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	c.Total = total
}
