package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/permission"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// Quote numbers look like TKL-0042; the next number continues from the
// trailing digits of the company's latest one.
var quoteNumberSuffix = regexp.MustCompile(`(\d+)$`)

// QuoteUseCase tenant-scoped quote CRUD, gated by the permission predicates.
// Totals and the quote number are always computed here, never trusted from
// the request.
type QuoteUseCase struct {
	quotes    repository.QuoteRepository
	customers repository.CustomerRepository
	users     repository.UserRepository
}

// NewQuoteUseCase builds the use case.
func NewQuoteUseCase(
	quotes repository.QuoteRepository,
	customers repository.CustomerRepository,
	users repository.UserRepository,
) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, customers: customers, users: users}
}

// Create persists a new quote. Requires the can_create_quotes flag; the
// referenced customer must belong to the session company.
func (uc *QuoteUseCase) Create(ctx context.Context, sess *session.Session, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if !permission.CanCreateQuote(sess.Membership) {
		return nil, domain.ErrForbidden
	}
	if err := uc.validateInput(ctx, sess, in.CustomerID, in.Items, in.Status); err != nil {
		return nil, err
	}

	number, err := uc.nextQuoteNumber(ctx, sess.Company.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quote := &entity.Quote{
		ID:          uuid.New().String(),
		QuoteNumber: number,
		CompanyID:   sess.Company.ID,
		CustomerID:  in.CustomerID,
		Notes:       in.Notes,
		ValidUntil:  in.ValidUntil,
		Status:      statusOrDraft(in.Status),
		CreatedBy:   sess.User.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyItems(quote, in.Items, in.TaxRate)

	if err := uc.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	return uc.toResponse(sess, quote, ""), nil
}

// Get returns one quote of the session company.
func (uc *QuoteUseCase) Get(ctx context.Context, sess *session.Session, id string) (*dto.QuoteResponse, error) {
	quote, err := uc.quotes.GetByID(ctx, sess.Company.ID, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(sess, quote, ""), nil
}

// List returns the company's quotes, newest first, with creator emails
// resolved for display.
func (uc *QuoteUseCase) List(ctx context.Context, sess *session.Session, page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	list, err := uc.quotes.ListByCompany(ctx, sess.Company.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	creatorIDs := make([]string, 0, len(list))
	for _, item := range list {
		if item.Quote.CreatedBy != "" {
			creatorIDs = append(creatorIDs, item.Quote.CreatedBy)
		}
	}
	creators, err := uc.users.GetByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuoteResponse, 0, len(list))
	for _, item := range list {
		email := ""
		if u := creators[item.Quote.CreatedBy]; u != nil {
			email = u.Email
		}
		resp := uc.toResponse(sess, &item.Quote, email)
		resp.CustomerName = item.CustomerName
		items = append(items, *resp)
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edits a quote. Requires edit authority over this quote; totals are
// recomputed, the quote number never changes.
func (uc *QuoteUseCase) Update(ctx context.Context, sess *session.Session, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.quotes.GetByID(ctx, sess.Company.ID, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !permission.CanEditQuote(sess.Membership, sess.User.ID, quote) {
		return nil, domain.ErrForbidden
	}
	if err := uc.validateInput(ctx, sess, in.CustomerID, in.Items, in.Status); err != nil {
		return nil, err
	}

	quote.CustomerID = in.CustomerID
	quote.Notes = in.Notes
	quote.ValidUntil = in.ValidUntil
	quote.Status = statusOrDraft(in.Status)
	quote.UpdatedAt = time.Now()
	applyItems(quote, in.Items, in.TaxRate)

	if err := uc.quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	return uc.toResponse(sess, quote, ""), nil
}

// Delete removes a quote. Delete authority mirrors edit authority.
func (uc *QuoteUseCase) Delete(ctx context.Context, sess *session.Session, id string) error {
	quote, err := uc.quotes.GetByID(ctx, sess.Company.ID, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return domain.ErrNotFound
	}
	if !permission.CanDeleteQuote(sess.Membership, sess.User.ID, quote) {
		return domain.ErrForbidden
	}
	return uc.quotes.Delete(ctx, sess.Company.ID, id)
}

// validateInput checks items, status and that the customer belongs to the
// session company. A foreign customer id is invalid input, not a leak of
// whether it exists elsewhere.
func (uc *QuoteUseCase) validateInput(ctx context.Context, sess *session.Session, customerID string, items []dto.QuoteItemRequest, status string) error {
	if customerID == "" || len(items) == 0 {
		return domain.ErrInvalidInput
	}
	if status != "" && !validQuoteStatus(status) {
		return domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(ctx, sess.Company.ID, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// nextQuoteNumber continues the company's TKL-NNNN sequence.
func (uc *QuoteUseCase) nextQuoteNumber(ctx context.Context, companyID string) (string, error) {
	last, err := uc.quotes.LastQuoteNumber(ctx, companyID)
	if err != nil {
		return "", err
	}
	next := 1
	if m := quoteNumberSuffix.FindString(last); m != "" {
		n, _ := strconv.Atoi(m)
		next = n + 1
	}
	return fmt.Sprintf("TKL-%04d", next), nil
}

// applyItems recomputes line totals, subtotal, tax and grand total.
func applyItems(quote *entity.Quote, items []dto.QuoteItemRequest, taxRate decimal.Decimal) {
	quote.Items = make([]entity.QuoteItem, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		lineTotal := it.Quantity.Mul(it.UnitPrice).Round(2)
		quote.Items = append(quote.Items, entity.QuoteItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	quote.Subtotal = subtotal
	quote.TaxRate = taxRate
	quote.TaxAmount = subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	quote.Total = quote.Subtotal.Add(quote.TaxAmount)
}

func statusOrDraft(status string) string {
	if status == "" {
		return entity.QuoteDraft
	}
	return status
}

func validQuoteStatus(s string) bool {
	switch s {
	case entity.QuoteDraft, entity.QuoteSent, entity.QuoteAccepted, entity.QuoteRejected:
		return true
	}
	return false
}

func (uc *QuoteUseCase) toResponse(sess *session.Session, q *entity.Quote, creatorEmail string) *dto.QuoteResponse {
	items := make([]dto.QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.QuoteItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return &dto.QuoteResponse{
		ID:             q.ID,
		QuoteNumber:    q.QuoteNumber,
		CompanyID:      q.CompanyID,
		CustomerID:     q.CustomerID,
		Items:          items,
		Subtotal:       q.Subtotal,
		TaxRate:        q.TaxRate,
		TaxAmount:      q.TaxAmount,
		Total:          q.Total,
		Notes:          q.Notes,
		ValidUntil:     q.ValidUntil,
		Status:         q.Status,
		CreatedBy:      q.CreatedBy,
		CreatedByEmail: creatorEmail,
		CanEdit:        permission.CanEditQuote(sess.Membership, sess.User.ID, q),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}
