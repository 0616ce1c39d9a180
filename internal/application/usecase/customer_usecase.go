package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// CustomerUseCase tenant-scoped customer CRUD. The company id always comes
// from the resolved session, never from the request.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Create persists a new customer in the session company.
func (uc *CustomerUseCase) Create(ctx context.Context, sess *session.Session, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: sess.Company.ID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		TaxNumber: in.TaxNumber,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// Get returns one customer of the session company. An id belonging to
// another tenant is a plain not found.
func (uc *CustomerUseCase) Get(ctx context.Context, sess *session.Session, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(ctx, sess.Company.ID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return ToCustomerResponse(customer), nil
}

// List returns the company's customers ordered by name.
func (uc *CustomerUseCase) List(ctx context.Context, sess *session.Session, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.customers.ListByCompany(ctx, sess.Company.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edits a customer of the session company.
func (uc *CustomerUseCase) Update(ctx context.Context, sess *session.Session, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(ctx, sess.Company.ID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.TaxNumber = in.TaxNumber
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// Delete removes a customer of the session company.
func (uc *CustomerUseCase) Delete(ctx context.Context, sess *session.Session, id string) error {
	customer, err := uc.customers.GetByID(ctx, sess.Company.ID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customers.Delete(ctx, sess.Company.ID, id)
}
