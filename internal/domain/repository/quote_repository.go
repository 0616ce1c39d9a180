package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// QuoteListItem is one row of the quote list: the quote joined with its
// customer's name for display.
type QuoteListItem struct {
	Quote        entity.Quote
	CustomerName string
}

// QuoteRepository is the persistence port for quotes. Company-scoped like
// CustomerRepository: out-of-tenant ids behave as not found.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Quote, error)
	// ListByCompany returns the company's quotes newest first, joined with
	// the customer name.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*QuoteListItem, error)
	// LastQuoteNumber returns the quote_number of the company's most recent
	// quote, empty string when the company has none.
	LastQuoteNumber(ctx context.Context, companyID string) (string, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, companyID, id string) error
}
