package postgres

import (
	"context"
	"fmt"

	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo CustomerRepository adapter over PostgreSQL. Every query
// carries the company_id predicate, so out-of-tenant ids scan as no rows.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, company_id, name, email, phone, address, tax_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.CompanyID, customer.Name, customer.Email,
		customer.Phone, customer.Address, customer.TaxNumber,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID returns the customer for (company, id), nil when absent or owned
// by another company.
func (r *CustomerRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, email, phone, address, tax_number, created_at, updated_at
		FROM customers WHERE company_id = $1 AND id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.TaxNumber,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByCompany returns the company's customers ordered by name.
func (r *CustomerRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, email, phone, address, tax_number, created_at, updated_at
		FROM customers WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.TaxNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update rewrites the customer's mutable fields. The WHERE clause matches
// (company_id, id), so zero rows affected covers both missing and
// out-of-tenant records.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, email = $4, phone = $5, address = $6, tax_number = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		customer.CompanyID, customer.ID, customer.Name, customer.Email,
		customer.Phone, customer.Address, customer.TaxNumber, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the customer for (company, id).
func (r *CustomerRepo) Delete(ctx context.Context, companyID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
