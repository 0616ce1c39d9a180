package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote statuses.
const (
	QuoteDraft    = "draft"
	QuoteSent     = "sent"
	QuoteAccepted = "accepted"
	QuoteRejected = "rejected"
)

// QuoteItem is one line of a quote. The items column is JSONB, so the
// struct carries json tags; order is preserved.
type QuoteItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Quote is a tenant-scoped document. CustomerID must reference a customer
// of the same company; the repository enforces that via query scoping.
type Quote struct {
	ID          string
	QuoteNumber string
	CompanyID   string
	CustomerID  string
	Items       []QuoteItem
	Subtotal    decimal.Decimal
	TaxRate     decimal.Decimal
	TaxAmount   decimal.Decimal
	Total       decimal.Decimal
	Notes       string
	ValidUntil  *time.Time
	Status      string // draft, sent, accepted, rejected
	CreatedBy   string // user that created the quote
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
