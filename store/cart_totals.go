package store

import (
	"github.com/shopspring/decimal"

	"admin-panel-client/models"
)

// CalculateCartTotals returns a copy of cart with TotalItems and TotalAmount
// recomputed from its items. TotalAmount is formatted to exactly two decimal
// digits; decimal.StringFixed rounds half away from zero, the same result
// toFixed(2) gives for the non-negative amounts this domain produces. Pure:
// the input cart and its items are never mutated, and an empty or nil item
// list yields 0 and "0.00".
func CalculateCartTotals(cart models.Cart) models.Cart {
	totalItems := 0
	totalAmount := decimal.Zero
	for _, item := range cart.Items {
		totalItems += item.Quantity
		totalAmount = totalAmount.Add(item.Subtotal)
	}

	out := cart
	out.TotalItems = totalItems
	out.TotalAmount = totalAmount.StringFixed(2)
	return out
}

// ApplyQuantity sets the quantity of the matching item, recomputes its
// subtotal from the product's unit price, and recomputes cart totals. Items
// are copied before mutation; an unknown itemID leaves the item list
// unchanged (totals are still recomputed, a no-op).
func ApplyQuantity(cart models.Cart, itemID int64, quantity int) models.Cart {
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			items[i].Subtotal = items[i].Product.Price.Mul(decimal.NewFromInt(int64(quantity)))
			break
		}
	}

	out := cart
	out.Items = items
	return CalculateCartTotals(out)
}

// RemoveItem drops the matching item and recomputes cart totals. Removing an
// unknown itemID is a no-op apart from the recomputation.
func RemoveItem(cart models.Cart, itemID int64) models.Cart {
	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}

	out := cart
	out.Items = items
	return CalculateCartTotals(out)
}
