package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// CompanyOverview is one row of the super-admin per-company breakdown.
type CompanyOverview struct {
	Company      entity.Company
	MemberCount  int64
	QuoteCount   int64
	Subscription *entity.Subscription // most recent, nil when the company has none
}

// StatsRepository holds the read-only cross-tenant queries used by the
// super-admin dashboard. None of them carry a company filter; access is
// gated upstream on the super-admin flag.
type StatsRepository interface {
	CountCompanies(ctx context.Context) (int64, error)
	CountMemberships(ctx context.Context) (int64, error)
	CountQuotes(ctx context.Context) (int64, error)
	ListCompanyOverviews(ctx context.Context) ([]*CompanyOverview, error)
}
