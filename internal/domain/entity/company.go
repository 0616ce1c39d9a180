package entity

import "time"

// Company is the tenant boundary. Customers, quotes, memberships and
// subscriptions all hang off a company_id.
type Company struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Address     string
	TaxNumber   string
	LogoURL     string
	AdminUserID string // user that created the company in the setup flow
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
