package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// SubscriptionRepository is the persistence port for subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	GetByID(ctx context.Context, id string) (*entity.Subscription, error)
	// GetActiveByCompany returns the most recent active subscription for the
	// company, nil when none.
	GetActiveByCompany(ctx context.Context, companyID string) (*entity.Subscription, error)
	// ListActive returns every active subscription across all companies
	// (super-admin aggregation only; no tenant filter).
	ListActive(ctx context.Context) ([]*entity.Subscription, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
