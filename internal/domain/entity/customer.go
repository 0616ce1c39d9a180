package entity

import "time"

// Customer is a tenant-scoped contact record.
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   string
	TaxNumber string
	CreatedAt time.Time
	UpdatedAt time.Time
}
