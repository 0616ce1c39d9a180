package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
)

func quoteFixture() (*usecase.QuoteUseCase, *fakeQuotes, *fakeCustomers, *fakeUsers) {
	quotes := &fakeQuotes{}
	customers := &fakeCustomers{items: []*entity.Customer{
		{ID: "cust-1", CompanyID: "c-1", Name: "Yilmaz Ltd"},
		{ID: "cust-x", CompanyID: "c-2", Name: "Other Tenant"},
	}}
	users := newFakeUsers(&entity.User{ID: "u-1", Email: "u-1@test.co"})
	return usecase.NewQuoteUseCase(quotes, customers, users), quotes, customers, users
}

func createReq(items ...dto.QuoteItemRequest) dto.CreateQuoteRequest {
	return dto.CreateQuoteRequest{
		CustomerID: "cust-1",
		Items:      items,
		TaxRate:    decimal.NewFromInt(20),
	}
}

func line(qty, price string) dto.QuoteItemRequest {
	return dto.QuoteItemRequest{
		Description: "item",
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func TestQuoteCreate_FirstNumberStartsAtOne(t *testing.T) {
	uc, _, _, _ := quoteFixture()

	res, err := uc.Create(context.Background(), sessionFor("u-1", entity.RoleUser), createReq(line("1", "100")))
	require.NoError(t, err)
	assert.Equal(t, "TKL-0001", res.QuoteNumber)
}

func TestQuoteCreate_NumberContinuesSequence(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items, &entity.Quote{ID: "q-41", CompanyID: "c-1", QuoteNumber: "TKL-0041"})

	res, err := uc.Create(context.Background(), sessionFor("u-1", entity.RoleUser), createReq(line("1", "100")))
	require.NoError(t, err)
	assert.Equal(t, "TKL-0042", res.QuoteNumber, "the number must continue from the latest quote's trailing digits")
}

func TestQuoteCreate_SequencesAreIndependentPerCompany(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items, &entity.Quote{ID: "q-x", CompanyID: "c-2", QuoteNumber: "TKL-0099"})

	res, err := uc.Create(context.Background(), sessionFor("u-1", entity.RoleUser), createReq(line("1", "100")))
	require.NoError(t, err)
	assert.Equal(t, "TKL-0001", res.QuoteNumber, "another company's quotes must not advance this company's sequence")
}

func TestQuoteCreate_TotalsComputedServerSide(t *testing.T) {
	uc, _, _, _ := quoteFixture()

	res, err := uc.Create(context.Background(), sessionFor("u-1", entity.RoleUser),
		createReq(line("2", "149.90"), line("1", "50")))
	require.NoError(t, err)

	assert.True(t, res.Subtotal.Equal(decimal.RequireFromString("349.80")), "subtotal = sum of qty*price, got %s", res.Subtotal)
	assert.True(t, res.TaxAmount.Equal(decimal.RequireFromString("69.96")), "tax = subtotal*rate/100, got %s", res.TaxAmount)
	assert.True(t, res.Total.Equal(decimal.RequireFromString("419.76")), "total = subtotal+tax, got %s", res.Total)
	require.Len(t, res.Items, 2)
	assert.True(t, res.Items[0].Total.Equal(decimal.RequireFromString("299.80")))
}

func TestQuoteCreate_DefaultsToDraft(t *testing.T) {
	uc, _, _, _ := quoteFixture()

	res, err := uc.Create(context.Background(), sessionFor("u-1", entity.RoleUser), createReq(line("1", "10")))
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteDraft, res.Status)
}

func TestQuoteCreate_RequiresCreateFlag(t *testing.T) {
	uc, _, _, _ := quoteFixture()
	sess := sessionFor("u-1", entity.RoleUser)
	sess.Membership.Permissions.CanCreateQuotes = false

	_, err := uc.Create(context.Background(), sess, createReq(line("1", "10")))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestQuoteCreate_ForeignCustomerIsInvalid(t *testing.T) {
	uc, _, _, _ := quoteFixture()
	in := createReq(line("1", "10"))
	in.CustomerID = "cust-x" // belongs to c-2

	_, err := uc.Create(context.Background(), sessionFor("u-1", entity.RoleUser), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"a customer of another tenant must be rejected as invalid input")
}

func TestQuoteCreate_RejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := quoteFixture()
	in := createReq(line("1", "10"))
	in.Status = "archived"

	_, err := uc.Create(context.Background(), sessionFor("u-1", entity.RoleUser), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuoteGet_OtherTenantIsNotFound(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items, &entity.Quote{ID: "q-1", CompanyID: "c-2", QuoteNumber: "TKL-0001"})

	_, err := uc.Get(context.Background(), sessionFor("u-1", entity.RoleUser), "q-1")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"an existing quote of another tenant must be indistinguishable from a missing one")
}

func TestQuoteUpdate_UserCannotEditOthersQuote(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items, &entity.Quote{
		ID: "q-1", CompanyID: "c-1", QuoteNumber: "TKL-0001", CreatedBy: "u-2",
	})
	in := dto.UpdateQuoteRequest{CustomerID: "cust-1", Items: []dto.QuoteItemRequest{line("1", "10")}}

	_, err := uc.Update(context.Background(), sessionFor("u-1", entity.RoleUser), "q-1", in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestQuoteUpdate_AdminEditsAnyQuote(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items, &entity.Quote{
		ID: "q-1", CompanyID: "c-1", QuoteNumber: "TKL-0007", CreatedBy: "u-2",
	})
	in := dto.UpdateQuoteRequest{
		CustomerID: "cust-1",
		Items:      []dto.QuoteItemRequest{line("3", "10")},
		TaxRate:    decimal.NewFromInt(10),
	}

	res, err := uc.Update(context.Background(), sessionFor("u-1", entity.RoleAdmin), "q-1", in)
	require.NoError(t, err)
	assert.Equal(t, "TKL-0007", res.QuoteNumber, "the quote number must never change on update")
	assert.True(t, res.Total.Equal(decimal.RequireFromString("33")), "totals must be recomputed, got %s", res.Total)
}

func TestQuoteUpdate_OwnerEditsOwnQuote(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items, &entity.Quote{
		ID: "q-1", CompanyID: "c-1", QuoteNumber: "TKL-0001", CreatedBy: "u-1",
	})
	in := dto.UpdateQuoteRequest{CustomerID: "cust-1", Items: []dto.QuoteItemRequest{line("1", "10")}, Status: entity.QuoteSent}

	res, err := uc.Update(context.Background(), sessionFor("u-1", entity.RoleUser), "q-1", in)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteSent, res.Status)
}

func TestQuoteDelete_MirrorsEditAuthority(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items, &entity.Quote{
		ID: "q-1", CompanyID: "c-1", CreatedBy: "u-2",
	})

	err := uc.Delete(context.Background(), sessionFor("u-1", entity.RoleUser), "q-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), sessionFor("u-1", entity.RoleAdmin), "q-1")
	require.NoError(t, err)
	assert.Empty(t, quotes.items)
}

func TestQuoteList_SetsCanEditPerRow(t *testing.T) {
	uc, quotes, _, _ := quoteFixture()
	quotes.items = append(quotes.items,
		&entity.Quote{ID: "q-1", CompanyID: "c-1", QuoteNumber: "TKL-0001", CreatedBy: "u-1"},
		&entity.Quote{ID: "q-2", CompanyID: "c-1", QuoteNumber: "TKL-0002", CreatedBy: "u-2"},
	)

	res, err := uc.List(context.Background(), sessionFor("u-1", entity.RoleUser), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	// Newest first: q-2 then q-1.
	assert.Equal(t, "q-2", res.Items[0].ID)
	assert.False(t, res.Items[0].CanEdit, "a plain user must not get edit on someone else's quote")
	assert.True(t, res.Items[1].CanEdit, "the creator keeps edit on their own quote")
	assert.Equal(t, "u-1@test.co", res.Items[1].CreatedByEmail)
}
