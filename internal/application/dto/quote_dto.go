package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemRequest one quote line as submitted by the form. The line total
// is recomputed server side.
type QuoteItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateQuoteRequest input for creating a quote. Totals and the quote number
// are assigned server side.
type CreateQuoteRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []QuoteItemRequest `json:"items"`
	TaxRate    decimal.Decimal    `json:"tax_rate"`
	Notes      string             `json:"notes"`
	ValidUntil *time.Time         `json:"valid_until"`
	Status     string             `json:"status"`
}

// UpdateQuoteRequest input for editing a quote; same shape as create, the
// quote number is immutable.
type UpdateQuoteRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []QuoteItemRequest `json:"items"`
	TaxRate    decimal.Decimal    `json:"tax_rate"`
	Notes      string             `json:"notes"`
	ValidUntil *time.Time         `json:"valid_until"`
	Status     string             `json:"status"`
}

// QuoteItemResponse one quote line.
type QuoteItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// QuoteResponse quote output. CreatedByEmail is resolved for lists so the UI
// can show who wrote the quote; CanEdit tells the caller whether edit/delete
// actions should be offered.
type QuoteResponse struct {
	ID             string              `json:"id"`
	QuoteNumber    string              `json:"quote_number"`
	CompanyID      string              `json:"company_id"`
	CustomerID     string              `json:"customer_id"`
	CustomerName   string              `json:"customer_name,omitempty"`
	Items          []QuoteItemResponse `json:"items"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	TaxRate        decimal.Decimal     `json:"tax_rate"`
	TaxAmount      decimal.Decimal     `json:"tax_amount"`
	Total          decimal.Decimal     `json:"total"`
	Notes          string              `json:"notes"`
	ValidUntil     *time.Time          `json:"valid_until"`
	Status         string              `json:"status"`
	CreatedBy      string              `json:"created_by"`
	CreatedByEmail string              `json:"created_by_email,omitempty"`
	CanEdit        bool                `json:"can_edit"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// QuoteListResponse paginated quote list.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
