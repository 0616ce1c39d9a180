package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// CompanyUserRepository is the persistence port for memberships.
type CompanyUserRepository interface {
	Create(ctx context.Context, membership *entity.CompanyUser) error
	// GetByUserWithCompany returns the user's membership joined with its
	// company, oldest membership first when more than one exists.
	// (nil, nil, nil) when the user belongs to no company.
	GetByUserWithCompany(ctx context.Context, userID string) (*entity.CompanyUser, *entity.Company, error)
	GetByCompanyAndUser(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.CompanyUser, error)
	UpdateRole(ctx context.Context, companyID, userID, role string, perms entity.Permissions) error
	Delete(ctx context.Context, companyID, userID string) error
}
