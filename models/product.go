package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductSnapshot is the denormalized product copy carried on a cart item.
// It is read-only from the client's point of view; price changes on the
// catalog entry do not propagate into existing cart lines.
type ProductSnapshot struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type ProductPayload struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	ImageURL    string          `json:"image_url"`
}

type ProductsResponse struct {
	Products   []Product   `json:"products"`
	Pagination *Pagination `json:"pagination"`
}

type ProductResponse struct {
	Product Product `json:"product"`
	Message string  `json:"message,omitempty"`
}

// ProductSearchParams mirrors the query string of GET /products/search.
type ProductSearchParams struct {
	Query    string
	MinPrice string
	MaxPrice string
	Page     int
	Limit    int
}
