package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// CustomerRepository is the persistence port for customers. Every method is
// company-scoped: a record of another tenant behaves exactly like a missing
// record, so callers never learn whether an id exists elsewhere.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error)
	// Update matches on (company_id, id); zero rows affected means not found.
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, companyID, id string) error
}
