package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo StatsRepository adapter over PostgreSQL. Cross-tenant reads for
// the platform dashboard; access is gated upstream on the super-admin flag.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository builds the adapter.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountCompanies returns the total number of companies.
func (r *StatsRepo) CountCompanies(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM companies`, "count companies")
}

// CountMemberships returns the total number of company memberships.
func (r *StatsRepo) CountMemberships(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM company_users`, "count memberships")
}

// CountQuotes returns the total number of quotes across all companies.
func (r *StatsRepo) CountQuotes(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM quotes`, "count quotes")
}

// ListCompanyOverviews returns every company with its member count, quote
// count and most recent subscription. One round trip; the lateral join
// picks the latest subscription per company regardless of status.
func (r *StatsRepo) ListCompanyOverviews(ctx context.Context) ([]*repository.CompanyOverview, error) {
	query := `
		SELECT c.id, c.name, c.email, c.phone, c.address, c.tax_number, c.logo_url, c.admin_user_id, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM company_users cu WHERE cu.company_id = c.id),
		       (SELECT COUNT(*) FROM quotes q WHERE q.company_id = c.id),
		       s.id, s.company_id, s.plan_name, s.price, s.currency, s.status, s.starts_at, s.ends_at, s.created_at, s.updated_at
		FROM companies c
		LEFT JOIN LATERAL (
			SELECT * FROM subscriptions
			WHERE company_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) s ON true
		ORDER BY c.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list company overviews: %w", err)
	}
	defer rows.Close()

	var list []*repository.CompanyOverview
	for rows.Next() {
		var o repository.CompanyOverview
		c := &o.Company
		var s nullableSubscription
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.TaxNumber, &c.LogoURL, &c.AdminUserID, &c.CreatedAt, &c.UpdatedAt,
			&o.MemberCount, &o.QuoteCount,
			&s.ID, &s.CompanyID, &s.PlanName, &s.Price, &s.Currency, &s.Status, &s.StartsAt, &s.EndsAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company overview: %w", err)
		}
		o.Subscription = s.toEntity()
		list = append(list, &o)
	}
	return list, rows.Err()
}

// nullableSubscription receives the columns of the LEFT JOIN side, all of
// which are NULL for companies without a subscription row.
type nullableSubscription struct {
	ID        *string
	CompanyID *string
	PlanName  *string
	Price     *decimal.Decimal
	Currency  *string
	Status    *string
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (s *nullableSubscription) toEntity() *entity.Subscription {
	if s.ID == nil {
		return nil
	}
	return &entity.Subscription{
		ID:        *s.ID,
		CompanyID: *s.CompanyID,
		PlanName:  *s.PlanName,
		Price:     *s.Price,
		Currency:  *s.Currency,
		Status:    *s.Status,
		StartsAt:  *s.StartsAt,
		EndsAt:    s.EndsAt,
		CreatedAt: *s.CreatedAt,
		UpdatedAt: *s.UpdatedAt,
	}
}

func (r *StatsRepo) count(ctx context.Context, query, op string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
