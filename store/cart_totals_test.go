package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-panel-client/models"
)

func testItem(id int64, quantity int, price string) models.CartItem {
	unitPrice := decimal.RequireFromString(price)
	return models.CartItem{
		ID:       id,
		Quantity: quantity,
		Subtotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Product: models.ProductSnapshot{
			ID:    id * 100,
			Name:  "product",
			Price: unitPrice,
		},
	}
}

func TestCalculateCartTotals_Correctness(t *testing.T) {
	cart := models.Cart{
		ID: 7,
		Items: []models.CartItem{
			testItem(1, 2, "5.00"),  // subtotal 10.00
			testItem(2, 1, "7.50"),  // subtotal 7.50
		},
	}

	out := CalculateCartTotals(cart)

	assert.Equal(t, 3, out.TotalItems)
	assert.Equal(t, "17.50", out.TotalAmount)
}

func TestCalculateCartTotals_Pure(t *testing.T) {
	items := []models.CartItem{
		testItem(1, 2, "5.00"),
		testItem(2, 3, "1.99"),
	}
	cart := models.Cart{ID: 7, Items: items}

	first := CalculateCartTotals(cart)
	second := CalculateCartTotals(cart)

	assert.Equal(t, first, second)

	// Input untouched.
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, "", cart.TotalAmount)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Subtotal.Equal(decimal.RequireFromString("10.00")))
}

func TestCalculateCartTotals_Empty(t *testing.T) {
	for _, cart := range []models.Cart{
		{Items: []models.CartItem{}},
		{Items: nil},
	} {
		out := CalculateCartTotals(cart)
		assert.Equal(t, 0, out.TotalItems)
		assert.Equal(t, "0.00", out.TotalAmount)
	}
}

func TestCalculateCartTotals_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		want     string
	}{
		{"half rounds up", "10.005", "10.01"},
		{"below half rounds down", "10.004", "10.00"},
		{"exact cents unchanged", "10.10", "10.10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := models.Cart{Items: []models.CartItem{{
				ID:       1,
				Quantity: 1,
				Subtotal: decimal.RequireFromString(tt.subtotal),
			}}}
			assert.Equal(t, tt.want, CalculateCartTotals(cart).TotalAmount)
		})
	}
}

func TestApplyQuantity_RecomputesSubtotalAndTotals(t *testing.T) {
	cart := CalculateCartTotals(models.Cart{
		Items: []models.CartItem{testItem(1, 2, "5.00")},
	})
	require.Equal(t, "10.00", cart.TotalAmount)

	out := ApplyQuantity(cart, 1, 5)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 5, out.Items[0].Quantity)
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, 5, out.TotalItems)
	assert.Equal(t, "25.00", out.TotalAmount)

	// Input cart and items untouched.
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "10.00", cart.TotalAmount)
}

func TestApplyQuantity_UnknownItemIsNoOp(t *testing.T) {
	cart := CalculateCartTotals(models.Cart{
		Items: []models.CartItem{testItem(1, 2, "5.00")},
	})

	out := ApplyQuantity(cart, 99, 5)

	assert.Equal(t, cart.Items, out.Items)
	assert.Equal(t, cart.TotalItems, out.TotalItems)
	assert.Equal(t, cart.TotalAmount, out.TotalAmount)
}

func TestRemoveItem_RecomputesFromRemaining(t *testing.T) {
	cart := CalculateCartTotals(models.Cart{
		Items: []models.CartItem{
			testItem(1, 2, "5.00"),
			testItem(2, 1, "7.50"),
		},
	})

	out := RemoveItem(cart, 1)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(2), out.Items[0].ID)
	assert.Equal(t, 1, out.TotalItems)
	assert.Equal(t, "7.50", out.TotalAmount)

	// Input untouched.
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "17.50", cart.TotalAmount)
}

func TestRemoveItem_LastItemLeavesEmptyCart(t *testing.T) {
	cart := CalculateCartTotals(models.Cart{
		Items: []models.CartItem{testItem(1, 1, "3.00")},
	})

	out := RemoveItem(cart, 1)

	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.TotalItems)
	assert.Equal(t, "0.00", out.TotalAmount)
}
