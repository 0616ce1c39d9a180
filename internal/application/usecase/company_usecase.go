package usecase

import (
	"context"
	"time"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/permission"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// CompanyUseCase is the settings screen: read the session company, update it
// (admin gate) and show the active subscription.
type CompanyUseCase struct {
	companies     repository.CompanyRepository
	subscriptions repository.SubscriptionRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(companies repository.CompanyRepository, subscriptions repository.SubscriptionRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, subscriptions: subscriptions}
}

// Get returns the session company.
func (uc *CompanyUseCase) Get(ctx context.Context, sess *session.Session) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, sess.Company.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return ToCompanyResponse(company), nil
}

// Update edits the company contact fields. Gated on the admin role.
func (uc *CompanyUseCase) Update(ctx context.Context, sess *session.Session, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !permission.CanEditCompany(sess.Membership) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companies.GetByID(ctx, sess.Company.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Name = in.Name
	company.Email = in.Email
	company.Phone = in.Phone
	company.Address = in.Address
	company.TaxNumber = in.TaxNumber
	company.UpdatedAt = time.Now()
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// ActiveSubscription returns the company's current active subscription,
// nil when there is none.
func (uc *CompanyUseCase) ActiveSubscription(ctx context.Context, sess *session.Session) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subscriptions.GetActiveByCompany(ctx, sess.Company.ID)
	if err != nil {
		return nil, err
	}
	return ToSubscriptionResponse(sub), nil
}
