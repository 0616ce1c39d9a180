package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// CompanyRepository is the persistence port for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}
