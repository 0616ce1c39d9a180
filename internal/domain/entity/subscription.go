package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionInactive  = "inactive"
	SubscriptionCancelled = "cancelled"
)

// Fixed monthly plan, created at company setup and by the super-admin
// dashboard. Single plan for now.
const (
	PlanMonthly      = "monthly"
	PlanCurrency     = "TRY"
	PlanMonthlyPrice = "99.00"
)

// Subscription is a billing record owned by a company. Several historical
// rows may exist; UI logic treats the most recent active one as "the"
// subscription.
type Subscription struct {
	ID        string
	CompanyID string
	PlanName  string
	Price     decimal.Decimal
	Currency  string
	Status    string // active, inactive, cancelled
	StartsAt  time.Time
	EndsAt    *time.Time // nil = open ended
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlyPrice returns the fixed monthly plan price.
func MonthlyPrice() decimal.Decimal {
	return decimal.RequireFromString(PlanMonthlyPrice)
}
