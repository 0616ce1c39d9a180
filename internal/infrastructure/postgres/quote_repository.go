package postgres

import (
	"context"
	"fmt"

	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo QuoteRepository adapter over PostgreSQL. The items column is
// JSONB and scans straight into []entity.QuoteItem; money columns are
// NUMERIC and scan into decimal.Decimal through the registered codec.
// Every query carries the company_id predicate.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository builds the adapter. Pass pool or tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persists a new quote.
func (r *QuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, quote_number, company_id, customer_id, items, subtotal, tax_rate, tax_amount, total, notes, valid_until, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		quote.ID, quote.QuoteNumber, quote.CompanyID, quote.CustomerID, quote.Items,
		quote.Subtotal, quote.TaxRate, quote.TaxAmount, quote.Total,
		quote.Notes, quote.ValidUntil, quote.Status, quote.CreatedBy,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID returns the quote for (company, id), nil when absent or owned by
// another company.
func (r *QuoteRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Quote, error) {
	query := `
		SELECT id, quote_number, company_id, customer_id, items, subtotal, tax_rate, tax_amount, total, notes, valid_until, status, created_by, created_at, updated_at
		FROM quotes WHERE company_id = $1 AND id = $2`
	var q entity.Quote
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&q.ID, &q.QuoteNumber, &q.CompanyID, &q.CustomerID, &q.Items,
		&q.Subtotal, &q.TaxRate, &q.TaxAmount, &q.Total,
		&q.Notes, &q.ValidUntil, &q.Status, &q.CreatedBy,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// ListByCompany returns the company's quotes newest first, each joined with
// its customer's name.
func (r *QuoteRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*repository.QuoteListItem, error) {
	query := `
		SELECT q.id, q.quote_number, q.company_id, q.customer_id, q.items, q.subtotal, q.tax_rate, q.tax_amount, q.total, q.notes, q.valid_until, q.status, q.created_by, q.created_at, q.updated_at,
		       COALESCE(c.name, '')
		FROM quotes q
		LEFT JOIN customers c ON c.id = q.customer_id AND c.company_id = q.company_id
		WHERE q.company_id = $1
		ORDER BY q.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*repository.QuoteListItem
	for rows.Next() {
		var item repository.QuoteListItem
		q := &item.Quote
		if err := rows.Scan(
			&q.ID, &q.QuoteNumber, &q.CompanyID, &q.CustomerID, &q.Items,
			&q.Subtotal, &q.TaxRate, &q.TaxAmount, &q.Total,
			&q.Notes, &q.ValidUntil, &q.Status, &q.CreatedBy,
			&q.CreatedAt, &q.UpdatedAt,
			&item.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// LastQuoteNumber returns the quote_number of the company's most recent
// quote, empty when the company has none yet.
func (r *QuoteRepo) LastQuoteNumber(ctx context.Context, companyID string) (string, error) {
	query := `
		SELECT quote_number FROM quotes
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
	var number string
	err := r.q.QueryRow(ctx, query, companyID).Scan(&number)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("last quote number: %w", err)
	}
	return number, nil
}

// Update rewrites the quote's mutable fields. The WHERE clause matches
// (company_id, id), so zero rows affected covers both missing and
// out-of-tenant records.
func (r *QuoteRepo) Update(ctx context.Context, quote *entity.Quote) error {
	query := `
		UPDATE quotes SET customer_id = $3, items = $4, subtotal = $5, tax_rate = $6, tax_amount = $7, total = $8, notes = $9, valid_until = $10, status = $11, updated_at = $12
		WHERE company_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		quote.CompanyID, quote.ID, quote.CustomerID, quote.Items,
		quote.Subtotal, quote.TaxRate, quote.TaxAmount, quote.Total,
		quote.Notes, quote.ValidUntil, quote.Status, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the quote for (company, id).
func (r *QuoteRepo) Delete(ctx context.Context, companyID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM quotes WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
