package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the signed-in user's shopping cart. TotalItems and TotalAmount are
// derived from Items and recomputed after every mutation; they are cached on
// the struct because consumers expect them as plain fields.
type Cart struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id,omitempty"`
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	TotalAmount string     `json:"totalAmount"`
}

// CartItem is one line in a cart. Subtotal is always Product.Price times
// Quantity; it is never mutated independently.
type CartItem struct {
	ID       int64           `json:"id"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Product  ProductSnapshot `json:"product"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CartResponse struct {
	Cart Cart `json:"cart"`
}

type AddToCartResponse struct {
	CartItem CartItem `json:"cartItem"`
	Message  string   `json:"message"`
}

type AllCartsResponse struct {
	Carts      []Cart      `json:"carts"`
	Pagination *Pagination `json:"pagination"`
}

// CartActivity is published to the activity queue after a cart mutation is
// confirmed by the server.
type CartActivity struct {
	EventID     string    `json:"event_id"`
	Action      string    `json:"action"`
	ItemID      int64     `json:"item_id,omitempty"`
	ProductID   int64     `json:"product_id,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	TotalItems  int       `json:"total_items"`
	TotalAmount string    `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
