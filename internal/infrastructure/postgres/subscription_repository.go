package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo SubscriptionRepository adapter over PostgreSQL (usable
// with pool or tx).
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository builds the adapter. Pass pool or tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create persists a new subscription.
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, company_id, plan_name, price, currency, status, starts_at, ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.PlanName, s.Price, s.Currency, s.Status,
		s.StartsAt, s.EndsAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// GetByID returns a subscription by id, nil when absent.
func (r *SubscriptionRepo) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	query := `
		SELECT id, company_id, plan_name, price, currency, status, starts_at, ends_at, created_at, updated_at
		FROM subscriptions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get subscription")
}

// GetActiveByCompany returns the company's most recent active subscription,
// nil when none exists.
func (r *SubscriptionRepo) GetActiveByCompany(ctx context.Context, companyID string) (*entity.Subscription, error) {
	query := `
		SELECT id, company_id, plan_name, price, currency, status, starts_at, ends_at, created_at, updated_at
		FROM subscriptions
		WHERE company_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID), "get active subscription")
}

// ListActive returns all active subscriptions across every company.
// Cross-tenant on purpose: super-admin aggregation only.
func (r *SubscriptionRepo) ListActive(ctx context.Context) ([]*entity.Subscription, error) {
	query := `
		SELECT id, company_id, plan_name, price, currency, status, starts_at, ends_at, created_at, updated_at
		FROM subscriptions WHERE status = 'active'`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active subscriptions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Subscription
	for rows.Next() {
		var s entity.Subscription
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.PlanName, &s.Price, &s.Currency, &s.Status, &s.StartsAt, &s.EndsAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateStatus rewrites the subscription status.
func (r *SubscriptionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE subscriptions SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update subscription status: %w", err)
	}
	return nil
}

func (r *SubscriptionRepo) scanOne(row interface{ Scan(dest ...any) error }, op string) (*entity.Subscription, error) {
	var s entity.Subscription
	err := row.Scan(&s.ID, &s.CompanyID, &s.PlanName, &s.Price, &s.Currency, &s.Status, &s.StartsAt, &s.EndsAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
