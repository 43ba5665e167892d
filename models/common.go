package models

import "github.com/shopspring/decimal"

func init() {
	// The backend serves money fields as JSON numbers; keep the same shape
	// when the panel re-serializes them.
	decimal.MarshalJSONWithoutQuotes = true
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
