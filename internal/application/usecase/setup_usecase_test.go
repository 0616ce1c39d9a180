package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
)

func setupFixture() (*usecase.SetupUseCase, *fakeSetupRunner) {
	runner := &fakeSetupRunner{
		companies:     &fakeCompanies{},
		memberships:   &fakeMemberships{},
		subscriptions: &fakeSubscriptions{},
	}
	return usecase.NewSetupUseCase(runner), runner
}

func TestSetup_CreatesCompanyMembershipAndSubscription(t *testing.T) {
	uc, runner := setupFixture()

	res, err := uc.Setup(context.Background(), sessionWithoutCompany("u-1"), dto.SetupCompanyRequest{
		Name:      "Acme",
		Email:     "info@acme.co",
		TaxNumber: "1234567890",
	})
	require.NoError(t, err)

	require.Len(t, runner.companies.items, 1)
	require.Len(t, runner.memberships.items, 1)
	require.Len(t, runner.subscriptions.items, 1)

	company := runner.companies.items[0]
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, "u-1", company.AdminUserID)

	membership := runner.memberships.items[0]
	assert.Equal(t, company.ID, membership.CompanyID)
	assert.Equal(t, "u-1", membership.UserID)
	assert.Equal(t, entity.RoleAdmin, membership.Role, "the founder becomes the company admin")
	assert.True(t, membership.Permissions.CanEditAllQuotes)
	assert.True(t, membership.Permissions.CanEditCompany)

	sub := runner.subscriptions.items[0]
	assert.Equal(t, company.ID, sub.CompanyID)
	assert.Equal(t, entity.SubscriptionActive, sub.Status)
	assert.Equal(t, entity.PlanMonthly, sub.PlanName)
	assert.Equal(t, entity.PlanCurrency, sub.Currency)
	assert.True(t, sub.Price.Equal(entity.MonthlyPrice()))

	assert.Equal(t, company.ID, res.Company.ID)
	assert.Equal(t, entity.RoleAdmin, res.Membership.Role)
	assert.Equal(t, entity.SubscriptionActive, res.Subscription.Status)
}

func TestSetup_ConflictWhenUserAlreadyHasCompany(t *testing.T) {
	uc, runner := setupFixture()

	_, err := uc.Setup(context.Background(), sessionFor("u-1", entity.RoleUser), dto.SetupCompanyRequest{Name: "Second Co"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, runner.companies.items)
}

func TestSetup_NameRequired(t *testing.T) {
	uc, runner := setupFixture()

	_, err := uc.Setup(context.Background(), sessionWithoutCompany("u-1"), dto.SetupCompanyRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, runner.companies.items)
}

func TestSetup_FailureLeavesNothingBehind(t *testing.T) {
	uc, runner := setupFixture()
	runner.failOn = "subscription"

	_, err := uc.Setup(context.Background(), sessionWithoutCompany("u-1"), dto.SetupCompanyRequest{Name: "Acme"})
	require.Error(t, err)

	assert.Empty(t, runner.companies.items, "a failed bootstrap must not leave a company behind")
	assert.Empty(t, runner.memberships.items)
	assert.Empty(t, runner.subscriptions.items)
}
