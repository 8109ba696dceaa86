package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShoppingCartTotal(t *testing.T) {
	cart := NewShoppingCart()
	assert.True(t, cart.Total.IsZero())

	laptop := Product{ProductID: 42, Name: "Laptop", Price: decimal.RequireFromString("1299.99")}
	mouse := Product{ProductID: 99, Name: "Mouse", Price: decimal.RequireFromString("29.99")}

	cart.Add(ShoppingCartItem{Product: laptop, Quantity: 2})
	cart.Add(ShoppingCartItem{Product: mouse, Quantity: 1})

	assert.True(t, cart.Total.Equal(decimal.RequireFromString("2629.97")))

	// Re-adding the same product replaces its line instead of duplicating it.
	cart.Add(ShoppingCartItem{Product: laptop, Quantity: 1})
	assert.Len(t, cart.Items, 2)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("1329.98")))
}

func TestLineTotal(t *testing.T) {
	item := ShoppingCartItem{
		Product:  Product{ProductID: 42, Price: decimal.RequireFromString("0.10")},
		Quantity: 3,
	}
	assert.Equal(t, "0.30", item.LineTotal().StringFixed(2))
}
