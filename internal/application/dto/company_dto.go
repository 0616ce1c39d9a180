package dto

import "time"

// SetupCompanyRequest input for the one-time company bootstrap.
type SetupCompanyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number"`
}

// UpdateCompanyRequest input for the settings form (admin only).
type UpdateCompanyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number"`
}

// CompanyResponse company output.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	TaxNumber   string    `json:"tax_number"`
	LogoURL     string    `json:"logo_url"`
	AdminUserID string    `json:"admin_user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SetupCompanyResponse everything the bootstrap created.
type SetupCompanyResponse struct {
	Company      CompanyResponse      `json:"company"`
	Membership   MembershipResponse   `json:"membership"`
	Subscription SubscriptionResponse `json:"subscription"`
}
