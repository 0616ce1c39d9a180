package usecase

import (
	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/domain/entity"
)

// ToCompanyResponse maps a company entity to its DTO.
func ToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		TaxNumber:   c.TaxNumber,
		LogoURL:     c.LogoURL,
		AdminUserID: c.AdminUserID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToMembershipResponse maps a membership entity to its DTO.
func ToMembershipResponse(m *entity.CompanyUser) *dto.MembershipResponse {
	if m == nil {
		return nil
	}
	return &dto.MembershipResponse{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		Role:        m.Role,
		Permissions: ToPermissionsResponse(m.Permissions),
	}
}

// ToPermissionsResponse maps permission flags to their DTO.
func ToPermissionsResponse(p entity.Permissions) dto.PermissionsResponse {
	return dto.PermissionsResponse{
		CanCreateQuotes:  p.CanCreateQuotes,
		CanEditOwnQuotes: p.CanEditOwnQuotes,
		CanEditAllQuotes: p.CanEditAllQuotes,
		CanEditCompany:   p.CanEditCompany,
	}
}

// ToSubscriptionResponse maps a subscription entity to its DTO.
func ToSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &dto.SubscriptionResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		PlanName:  s.PlanName,
		Price:     s.Price,
		Currency:  s.Currency,
		Status:    s.Status,
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
	}
}

// ToCustomerResponse maps a customer entity to its DTO.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		TaxNumber: c.TaxNumber,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
