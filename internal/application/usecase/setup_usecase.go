package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/permission"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// SetupTxRunner executes the company bootstrap inside one transaction. All
// three inserts commit together or none do, so a partially created company
// is unreachable.
type SetupTxRunner interface {
	RunSetup(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		memberships repository.CompanyUserRepository,
		subscriptions repository.SubscriptionRepository,
	) error) error
}

// SetupUseCase is the one-time company bootstrap: company + admin membership
// + active monthly subscription, created atomically for a user that has no
// company yet.
type SetupUseCase struct {
	tx SetupTxRunner
}

// NewSetupUseCase builds the use case.
func NewSetupUseCase(tx SetupTxRunner) *SetupUseCase {
	return &SetupUseCase{tx: tx}
}

// Setup creates the tenant. Callers that already belong to a company get
// ErrConflict; once a company exists the no-company state is not reachable
// again.
func (uc *SetupUseCase) Setup(ctx context.Context, sess *session.Session, in dto.SetupCompanyRequest) (*dto.SetupCompanyResponse, error) {
	if sess.HasCompany() {
		return nil, domain.ErrConflict
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		TaxNumber:   in.TaxNumber,
		AdminUserID: sess.User.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	membership := &entity.CompanyUser{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		UserID:      sess.User.ID,
		Role:        entity.RoleAdmin,
		Permissions: permission.ForRole(entity.RoleAdmin),
		CreatedAt:   now,
	}
	subscription := &entity.Subscription{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		PlanName:  entity.PlanMonthly,
		Price:     entity.MonthlyPrice(),
		Currency:  entity.PlanCurrency,
		Status:    entity.SubscriptionActive,
		StartsAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.tx.RunSetup(ctx, func(
		companies repository.CompanyRepository,
		memberships repository.CompanyUserRepository,
		subscriptions repository.SubscriptionRepository,
	) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		if err := memberships.Create(ctx, membership); err != nil {
			return err
		}
		return subscriptions.Create(ctx, subscription)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SetupCompanyResponse{
		Company:      *ToCompanyResponse(company),
		Membership:   *ToMembershipResponse(membership),
		Subscription: *ToSubscriptionResponse(subscription),
	}, nil
}
