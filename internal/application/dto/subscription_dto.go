package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionResponse subscription output.
type SubscriptionResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	PlanName  string          `json:"plan_name"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	StartsAt  time.Time       `json:"starts_at"`
	EndsAt    *time.Time      `json:"ends_at"`
}
