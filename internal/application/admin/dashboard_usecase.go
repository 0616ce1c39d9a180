// Package admin holds the super-admin cross-tenant use cases. Nothing here
// carries a company filter; the router gates every route on the resolved
// super-admin flag.
package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// DashboardUseCase computes the system-wide statistics and manages
// subscriptions across tenants.
type DashboardUseCase struct {
	stats         repository.StatsRepository
	subscriptions repository.SubscriptionRepository
	companies     repository.CompanyRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(
	stats repository.StatsRepository,
	subscriptions repository.SubscriptionRepository,
	companies repository.CompanyRepository,
) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, subscriptions: subscriptions, companies: companies}
}

// Dashboard fetches the totals as a parallel batch of independent reads and
// attaches the per-company breakdown. One failed read aborts the whole
// aggregation; the read is idempotent, callers simply retry.
func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		totalCompanies   int64
		totalMemberships int64
		totalQuotes      int64
		activeSubs       []*entity.Subscription
		overviews        []*repository.CompanyOverview
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalCompanies, err = uc.stats.CountCompanies(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalMemberships, err = uc.stats.CountMemberships(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalQuotes, err = uc.stats.CountQuotes(gctx)
		return err
	})
	g.Go(func() (err error) {
		activeSubs, err = uc.subscriptions.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		overviews, err = uc.stats.ListCompanyOverviews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, s := range activeSubs {
		revenue = revenue.Add(s.Price)
	}

	companies := make([]dto.CompanyOverviewResponse, 0, len(overviews))
	for _, o := range overviews {
		companies = append(companies, dto.CompanyOverviewResponse{
			Company:      *usecase.ToCompanyResponse(&o.Company),
			MemberCount:  o.MemberCount,
			QuoteCount:   o.QuoteCount,
			Subscription: usecase.ToSubscriptionResponse(o.Subscription),
		})
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStatsResponse{
			TotalCompanies:      totalCompanies,
			TotalUsers:          totalMemberships,
			TotalQuotes:         totalQuotes,
			MonthlyRevenue:      revenue,
			ActiveSubscriptions: int64(len(activeSubs)),
		},
		Companies: companies,
	}, nil
}

// ToggleSubscription flips a subscription between active and inactive.
// Toggling twice restores the original state.
func (uc *DashboardUseCase) ToggleSubscription(ctx context.Context, subscriptionID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subscriptions.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}

	newStatus := entity.SubscriptionActive
	if sub.Status == entity.SubscriptionActive {
		newStatus = entity.SubscriptionInactive
	}
	if err := uc.subscriptions.UpdateStatus(ctx, sub.ID, newStatus); err != nil {
		return nil, err
	}
	sub.Status = newStatus
	return usecase.ToSubscriptionResponse(sub), nil
}

// CreateSubscription provisions the fixed monthly plan for a company that
// has none. A company with an active subscription gets ErrConflict.
func (uc *DashboardUseCase) CreateSubscription(ctx context.Context, companyID string) (*dto.SubscriptionResponse, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	active, err := uc.subscriptions.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	sub := &entity.Subscription{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		PlanName:  entity.PlanMonthly,
		Price:     entity.MonthlyPrice(),
		Currency:  entity.PlanCurrency,
		Status:    entity.SubscriptionActive,
		StartsAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return usecase.ToSubscriptionResponse(sub), nil
}
